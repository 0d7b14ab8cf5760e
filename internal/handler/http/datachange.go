package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/datachange"
	"github.com/kerjapedia/hrms-backend-go/internal/handler/http/response"
)

type DataChangeHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type DataChangeHandlerImpl struct {
	dataChangeService datachange.DataChangeService
}

func NewDataChangeHandler(dataChangeService datachange.DataChangeService) DataChangeHandler {
	return &DataChangeHandlerImpl{dataChangeService: dataChangeService}
}

// CreateRequest implements DataChangeHandler.
func (d *DataChangeHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req datachange.CreateDataChangeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	claims, err := claimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	if claims.EmployeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	created, err := d.dataChangeService.CreateRequest(r.Context(), claims.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Data change request submitted", created)
}

// GetMyRequests implements DataChangeHandler.
func (d *DataChangeHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	if claims.EmployeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	requests, err := d.dataChangeService.ListByEmployee(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListRequests implements DataChangeHandler.
func (d *DataChangeHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	var status *datachange.Status
	switch datachange.Status(r.URL.Query().Get("status")) {
	case datachange.StatusPending, datachange.StatusApproved, datachange.StatusRejected:
		s := datachange.Status(r.URL.Query().Get("status"))
		status = &s
	}

	requests, err := d.dataChangeService.ListRequests(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ApproveRequest implements DataChangeHandler.
func (d *DataChangeHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	approved, err := d.dataChangeService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Data change request approved", approved)
}

// RejectRequest implements DataChangeHandler.
func (d *DataChangeHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	rejected, err := d.dataChangeService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Data change request rejected", rejected)
}
