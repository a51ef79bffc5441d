package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/logger"
	"github.com/rentaride/car-rental-api/internal/security"
	"github.com/rentaride/car-rental-api/internal/store"
)

// RegisterInput is the validated account payload coming from the handler.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

// AuthService owns account lifecycle: registration, email verification and
// login. Email delivery is handed off to the broker; a publish failure is
// logged and never fails the request.
type AuthService struct {
	store     store.Storage
	hasher    *security.PasswordHasher
	issuer    *security.TokenIssuer
	publisher EventPublisher
}

func NewAuthService(st store.Storage, hasher *security.PasswordHasher, issuer *security.TokenIssuer, publisher EventPublisher) *AuthService {
	return &AuthService{
		store:     st,
		hasher:    hasher,
		issuer:    issuer,
		publisher: publisher,
	}
}

// Register creates an unverified customer account and queues the
// verification email carrying the 6-digit code.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	if in.Password == "" {
		return nil, domain.ErrPasswordRequired()
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, domain.ErrRandomFailed(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Password:         hash,
		PhoneNumber:      in.PhoneNumber,
		Address:          in.Address,
		Role:             domain.RoleCustomer,
		IsVerified:       false,
		VerificationCode: &code,
	}
	if err := s.store.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishVerificationEmail(ctx, customer.Email, customer.FullName(), code); err != nil {
			lg := logger.FromContext(ctx)
			lg.Error().
				Err(err).
				Int64("customer_id", customer.ID).
				Str("email", customer.Email).
				Msg("failed to publish verification email event")
		}
	}
	return customer, nil
}

// CreateAdmin creates a pre-verified admin account. Admins skip the email
// verification flow and get a welcome email instead.
func (s *AuthService) CreateAdmin(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	if in.Password == "" {
		return nil, domain.ErrPasswordRequired()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Password:    hash,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Role:        domain.RoleAdmin,
		IsVerified:  true,
	}
	if err := s.store.Customers.Create(ctx, admin); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishWelcomeEmail(ctx, admin.Email, admin.FullName()); err != nil {
			lg := logger.FromContext(ctx)
			lg.Error().
				Err(err).
				Int64("customer_id", admin.ID).
				Str("email", admin.Email).
				Msg("failed to publish welcome email event")
		}
	}
	return admin, nil
}

// VerifyEmail flips an account to verified when the submitted code matches
// the stored one exactly.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*domain.Customer, error) {
	customer, err := s.store.Customers.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrStorage(err)
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound()
	}
	if customer.IsVerified {
		return nil, domain.ErrAlreadyVerified()
	}
	if customer.VerificationCode == nil || *customer.VerificationCode != code {
		return nil, domain.ErrInvalidVerificationCode()
	}

	if err := s.store.Customers.MarkVerified(ctx, customer.ID); err != nil {
		return nil, domain.ErrStorage(err)
	}
	customer.IsVerified = true
	customer.VerificationCode = nil

	if s.publisher != nil {
		if err := s.publisher.PublishWelcomeEmail(ctx, customer.Email, customer.FullName()); err != nil {
			lg := logger.FromContext(ctx)
			lg.Error().
				Err(err).
				Int64("customer_id", customer.ID).
				Str("email", customer.Email).
				Msg("failed to publish welcome email event")
		}
	}
	return customer, nil
}

// Login checks credentials and issues a signed token. Unknown emails and
// wrong passwords return the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	customer, err := s.store.Customers.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrStorage(err)
	}
	if customer == nil {
		return "", nil, domain.ErrInvalidCredentials()
	}

	// Verification is checked before the password so an unverified user
	// gets told to verify rather than a generic credentials failure.
	if !customer.IsVerified && customer.Role != domain.RoleAdmin {
		return "", nil, domain.ErrAccountUnverified()
	}

	if !s.hasher.Compare(customer.Password, password) {
		return "", nil, domain.ErrInvalidCredentials()
	}

	token, err := s.issuer.Issue(customer)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

// generateVerificationCode returns a zero-padded 6-digit code drawn
// uniformly from [0, 1000000).
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
