package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type LocationHandler struct {
	store store.Storage
}

func NewLocationHandler(st store.Storage) *LocationHandler {
	return &LocationHandler{store: st}
}

func (h *LocationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	locations, err := h.store.Locations.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	response.JSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	location, err := h.store.Locations.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Location not found")
		return
	}
	if location == nil {
		response.Error(w, http.StatusNotFound, "Location not found")
		return
	}
	response.JSON(w, http.StatusOK, location)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var location domain.Location
	if err := render.DecodeJSON(r.Body, &location); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Locations.Create(r.Context(), &location); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create location")
		return
	}
	response.JSON(w, http.StatusCreated, location)
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch domain.LocationPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	location, err := h.store.Locations.Update(r.Context(), id, &patch)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update location")
		return
	}
	if location == nil {
		response.Error(w, http.StatusNotFound, "Location not found")
		return
	}
	response.JSON(w, http.StatusOK, location)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.store.Locations.Delete(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete location")
		return
	}
	response.Message(w, http.StatusOK, "Location deleted")
}

func (h *LocationHandler) WithCars(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Locations.WithCars(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch locations with cars")
		return
	}
	response.JSON(w, http.StatusOK, out)
}

func (h *LocationHandler) WithAssignedCars(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Locations.WithAssignedCars(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch locations with assigned cars")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
