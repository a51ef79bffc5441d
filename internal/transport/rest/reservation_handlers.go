package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type ReservationHandler struct {
	store store.Storage
}

func NewReservationHandler(st store.Storage) *ReservationHandler {
	return &ReservationHandler{store: st}
}

func (h *ReservationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.store.Reservations.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	response.JSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	reservation, err := h.store.Reservations.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Reservation not found")
		return
	}
	if reservation == nil {
		response.Error(w, http.StatusNotFound, "Reservation not found")
		return
	}
	response.JSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reservation domain.Reservation
	if err := render.DecodeJSON(r.Body, &reservation); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Reservations.Create(r.Context(), &reservation); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create reservation")
		return
	}
	response.JSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch domain.ReservationPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reservation, err := h.store.Reservations.Update(r.Context(), id, &patch)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update reservation")
		return
	}
	if reservation == nil {
		response.Error(w, http.StatusNotFound, "Reservation not found")
		return
	}
	response.JSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.store.Reservations.Delete(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}
	response.Message(w, http.StatusOK, "Reservation deleted")
}

func (h *ReservationHandler) WithDetails(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Reservations.WithDetails(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Error fetching reservation details")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
