package rest

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/service"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

var validate = validator.New()

// AuthHandler serves registration, verification and login.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type verifyRequest struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verificationCode"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// customerSummary is the redacted account shape returned by the auth flow.
type customerSummary struct {
	CustomerID int64       `json:"customerID"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	IsVerified bool        `json:"isVerified"`
}

func summarize(c *domain.Customer) customerSummary {
	return customerSummary{
		CustomerID: c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Role:       c.Role,
		IsVerified: c.IsVerified,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Password is required")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid registration data")
		return
	}

	customer, err := h.auth.Register(r.Context(), service.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{
		"message":  "Customer registered successfully. Please check your email for verification code.",
		"customer": summarize(customer),
	})
}

func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Password is required")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid registration data")
		return
	}

	admin, err := h.auth.CreateAdmin(r.Context(), service.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{
		"message": "Admin created successfully",
		"admin":   summarize(admin),
	})
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.VerificationCode == "" {
		response.Error(w, http.StatusBadRequest, "Email and verification code are required")
		return
	}

	customer, err := h.auth.VerifyEmail(r.Context(), req.Email, req.VerificationCode)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"message":  "Email verified successfully",
		"customer": summarize(customer),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, customer, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	// The payload key and message flip on the account's role.
	body := map[string]any{
		"message": customer.Role.LoginMessage(),
		"token":   token,
	}
	body[customer.Role.PayloadKey()] = summarize(customer)
	response.JSON(w, http.StatusOK, body)
}
