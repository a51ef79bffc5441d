package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/service"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type CarHandler struct {
	store store.Storage
	cars  *service.CarService
}

func NewCarHandler(st store.Storage, cars *service.CarService) *CarHandler {
	return &CarHandler{store: st, cars: cars}
}

func (h *CarHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	cars, err := h.store.Cars.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch cars")
		return
	}
	response.JSON(w, http.StatusOK, cars)
}

func (h *CarHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	car, err := h.store.Cars.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Car not found")
		return
	}
	if car == nil {
		response.Error(w, http.StatusNotFound, "Car not found")
		return
	}
	response.JSON(w, http.StatusOK, car)
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := render.DecodeJSON(r.Body, &car); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Cars.Create(r.Context(), &car); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create car")
		return
	}
	response.JSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch domain.CarPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car, err := h.store.Cars.Update(r.Context(), id, &patch)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update car")
		return
	}
	if car == nil {
		response.Error(w, http.StatusNotFound, "Car not found")
		return
	}
	response.JSON(w, http.StatusOK, car)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if _, err := h.cars.Remove(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete car")
		return
	}
	response.Message(w, http.StatusOK, "Car deleted")
}

func (h *CarHandler) WithLocation(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Cars.WithLocation(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch cars with location details")
		return
	}
	response.JSON(w, http.StatusOK, out)
}

func (h *CarHandler) BookingStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Cars.BookingStats(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch car booking statistics")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
