package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type BookingHandler struct {
	store store.Storage
}

func NewBookingHandler(st store.Storage) *BookingHandler {
	return &BookingHandler{store: st}
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.store.Bookings.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	response.JSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	booking, err := h.store.Bookings.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Booking not found")
		return
	}
	if booking == nil {
		response.Error(w, http.StatusNotFound, "Booking not found")
		return
	}
	response.JSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if err := render.DecodeJSON(r.Body, &booking); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Bookings.Create(r.Context(), &booking); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}
	response.JSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch domain.BookingPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.store.Bookings.Update(r.Context(), id, &patch)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	if booking == nil {
		response.Error(w, http.StatusNotFound, "Booking not found")
		return
	}
	response.JSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.store.Bookings.Delete(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	response.Message(w, http.StatusOK, "Booking deleted")
}

func (h *BookingHandler) WithDetails(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Bookings.WithDetails(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch bookings with payments")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
