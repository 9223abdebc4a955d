package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/holiday"
	"github.com/go-chi/jwtauth/v5"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepository}
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
	}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return holiday.HolidayResponse{}, holiday.ErrPastDate
	}

	exists, err := s.HolidayRepository.ExistsByDate(ctx, date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to check holiday calendar: %w", err)
	}
	if exists {
		return holiday.HolidayResponse{}, holiday.ErrDateTaken
	}

	h := holiday.Holiday{
		Date:        date,
		Name:        req.Name,
		Description: req.Description,
	}
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if actorID, ok := claims["user_id"].(string); ok && actorID != "" {
			h.CreatedBy = &actorID
		}
	}

	created, err := s.HolidayRepository.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return toHolidayResponse(created), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}
	return responses, nil
}
