package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/security"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

// CustomerHandler serves the account CRUD surface. Reads and updates on
// /customers/{id} are ownership checked; list and delete are admin only.
type CustomerHandler struct {
	store  store.Storage
	hasher *security.PasswordHasher
}

func NewCustomerHandler(st store.Storage, hasher *security.PasswordHasher) *CustomerHandler {
	return &CustomerHandler{store: st, hasher: hasher}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// canAccessCustomer reports whether the bearer may touch the addressed
// account: admins always, customers only their own row.
func canAccessCustomer(claims *security.Claims, id int64) bool {
	return claims.Role == domain.RoleAdmin || claims.UserID == id
}

func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.Customers.GetAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}
	response.JSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	claims, _ := ClaimsFromContext(r.Context())
	if claims == nil || !canAccessCustomer(claims, id) {
		response.Error(w, http.StatusForbidden, "Access denied")
		return
	}

	customer, err := h.store.Customers.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch customer")
		return
	}
	if customer == nil {
		response.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	response.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	claims, _ := ClaimsFromContext(r.Context())
	if claims == nil || !canAccessCustomer(claims, id) {
		response.Error(w, http.StatusForbidden, "Access denied")
		return
	}

	var patch domain.CustomerPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A plaintext password in the patch gets hashed before it reaches
	// storage.
	if patch.Password != nil && *patch.Password != "" {
		hashed, err := h.hasher.Hash(*patch.Password)
		if err != nil {
			response.DomainError(w, err)
			return
		}
		patch.Password = &hashed
	}

	// Only admins may touch role and verification state.
	if claims.Role != domain.RoleAdmin {
		patch.Role = nil
		patch.IsVerified = nil
		patch.VerificationCode = nil
	}

	customer, err := h.store.Customers.Update(r.Context(), id, &patch)
	if err != nil {
		if domain.Is(err, "email_already_exists") {
			response.Error(w, http.StatusBadRequest, "Email already in use")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update customer")
		return
	}
	if customer == nil {
		response.Error(w, http.StatusNotFound, "Customer not found")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	deleted, err := h.store.Customers.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if !deleted {
		response.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	response.Message(w, http.StatusOK, "Customer deleted successfully")
}

func (h *CustomerHandler) WithBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Customers.WithBookings(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch customers with bookings.")
		return
	}
	response.JSON(w, http.StatusOK, out)
}

func (h *CustomerHandler) WithReservations(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Customers.WithReservations(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch customers with reservation.")
		return
	}
	response.JSON(w, http.StatusOK, out)
}
