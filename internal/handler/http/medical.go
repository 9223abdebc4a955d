package http

import (
	"encoding/json"
	"net/http"

	"github.com/colegio-admin/staff-backend-go/internal/domain/medical"
	"github.com/colegio-admin/staff-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MedicalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type MedicalHandlerImpl struct {
	medicalService medical.MedicalLeaveService
}

func NewMedicalHandler(medicalService medical.MedicalLeaveService) MedicalHandler {
	return &MedicalHandlerImpl{medicalService: medicalService}
}

// Create implements MedicalHandler.
func (h *MedicalHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req medical.CreateMedicalLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.medicalService.CreateMedicalLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Medical leave registered successfully", created)
}

// List implements MedicalHandler.
func (h *MedicalHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.medicalService.ListMedicalLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListByEmployee implements MedicalHandler.
func (h *MedicalHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	leaves, err := h.medicalService.ListEmployeeMedicalLeaves(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// Get implements MedicalHandler.
func (h *MedicalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Medical leave ID is required", nil)
		return
	}

	leave, err := h.medicalService.GetMedicalLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave)
}
