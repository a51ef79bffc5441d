package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type PaymentHandler struct {
	store store.Storage
}

func NewPaymentHandler(st store.Storage) *PaymentHandler {
	return &PaymentHandler{store: st}
}

func (h *PaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	payments, err := h.store.Payments.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	response.JSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	payment, err := h.store.Payments.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Payment not found")
		return
	}
	if payment == nil {
		response.Error(w, http.StatusNotFound, "Payment not found")
		return
	}
	response.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payment domain.Payment
	if err := render.DecodeJSON(r.Body, &payment); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Payments.Create(r.Context(), &payment); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create payment")
		return
	}
	response.JSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch domain.PaymentPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.store.Payments.Update(r.Context(), id, &patch)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update payment")
		return
	}
	if payment == nil {
		response.Error(w, http.StatusNotFound, "Payment not found")
		return
	}
	response.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.store.Payments.Delete(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete payment")
		return
	}
	response.Message(w, http.StatusOK, "Payment deleted")
}

func (h *PaymentHandler) WithBooking(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Payments.WithBooking(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch payments with booking.")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
