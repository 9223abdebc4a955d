package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppealHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type AppealHandlerImpl struct {
	appealService attendance.AppealService
}

func NewAppealHandler(appealService attendance.AppealService) AppealHandler {
	return &AppealHandlerImpl{appealService: appealService}
}

func appealFilterFromQuery(r *http.Request) attendance.AppealFilter {
	filter := attendance.AppealFilter{
		Status:     optionalQueryParam(r, "status"),
		EmployeeID: optionalQueryParam(r, "employee_id"),
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return filter
}

// Create implements AppealHandler.
func (h *AppealHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req attendance.CreateAppealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = recordID

	appeal, err := h.appealService.CreateAppeal(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Appeal submitted for review", appeal)
}

// List implements AppealHandler.
func (h *AppealHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.appealService.ListAppeals(r.Context(), appealFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements AppealHandler.
func (h *AppealHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.appealService.ListMyAppeals(r.Context(), appealFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements AppealHandler.
func (h *AppealHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Appeal ID is required", nil)
		return
	}

	appeal, err := h.appealService.GetAppeal(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, appeal)
}

// Review implements AppealHandler.
func (h *AppealHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Appeal ID is required", nil)
		return
	}

	var req attendance.ReviewAppealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	appeal, err := h.appealService.ReviewAppeal(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Appeal reviewed", appeal)
}
