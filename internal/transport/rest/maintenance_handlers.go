package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type MaintenanceHandler struct {
	store store.Storage
}

func NewMaintenanceHandler(st store.Storage) *MaintenanceHandler {
	return &MaintenanceHandler{store: st}
}

func (h *MaintenanceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.Maintenances.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch maintenance records")
		return
	}
	response.JSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	record, err := h.store.Maintenances.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Maintenance record not found")
		return
	}
	if record == nil {
		response.Error(w, http.StatusNotFound, "Maintenance record not found")
		return
	}
	response.JSON(w, http.StatusOK, record)
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record domain.Maintenance
	if err := render.DecodeJSON(r.Body, &record); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Maintenances.Create(r.Context(), &record); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create maintenance record")
		return
	}
	response.JSON(w, http.StatusCreated, record)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch domain.MaintenancePatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.store.Maintenances.Update(r.Context(), id, &patch)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update maintenance record")
		return
	}
	if record == nil {
		response.Error(w, http.StatusNotFound, "Maintenance record not found")
		return
	}
	response.JSON(w, http.StatusOK, record)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.store.Maintenances.Delete(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete maintenance record")
		return
	}
	response.Message(w, http.StatusOK, "Maintenance record deleted")
}

func (h *MaintenanceHandler) WithCar(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Maintenances.WithCar(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch maintenance records")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
