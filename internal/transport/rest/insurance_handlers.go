package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type InsuranceHandler struct {
	store store.Storage
}

func NewInsuranceHandler(st store.Storage) *InsuranceHandler {
	return &InsuranceHandler{store: st}
}

func (h *InsuranceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	policies, err := h.store.Insurances.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch insurance records")
		return
	}
	response.JSON(w, http.StatusOK, policies)
}

func (h *InsuranceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	policy, err := h.store.Insurances.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Insurance record not found")
		return
	}
	if policy == nil {
		response.Error(w, http.StatusNotFound, "Insurance record not found")
		return
	}
	response.JSON(w, http.StatusOK, policy)
}

func (h *InsuranceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var policy domain.Insurance
	if err := render.DecodeJSON(r.Body, &policy); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Insurances.Create(r.Context(), &policy); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create insurance record")
		return
	}
	response.JSON(w, http.StatusCreated, policy)
}

func (h *InsuranceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch domain.InsurancePatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	policy, err := h.store.Insurances.Update(r.Context(), id, &patch)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update insurance record")
		return
	}
	if policy == nil {
		response.Error(w, http.StatusNotFound, "Insurance record not found")
		return
	}
	response.JSON(w, http.StatusOK, policy)
}

func (h *InsuranceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.store.Insurances.Delete(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete insurance record")
		return
	}
	response.Message(w, http.StatusOK, "Insurance record deleted")
}

func (h *InsuranceHandler) WithCar(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Insurances.WithCar(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch insurance records")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
