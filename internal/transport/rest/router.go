package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rentaride/car-rental-api/internal/metrics"
	"github.com/rentaride/car-rental-api/internal/security"
	"github.com/rentaride/car-rental-api/internal/service"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type RouterDeps struct {
	Store  store.Storage
	Auth   *service.AuthService
	Cars   *service.CarService
	Issuer *security.TokenIssuer
	Hasher *security.PasswordHasher
	Redis  *redis.Client
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Auth == nil {
		panic("rest.NewRouter: nil auth service")
	}
	if d.Cars == nil {
		panic("rest.NewRouter: nil car service")
	}
	if d.Issuer == nil {
		panic("rest.NewRouter: nil token issuer")
	}

	authH := NewAuthHandler(d.Auth)
	customerH := NewCustomerHandler(d.Store, d.Hasher)
	carH := NewCarHandler(d.Store, d.Cars)
	locationH := NewLocationHandler(d.Store)
	bookingH := NewBookingHandler(d.Store)
	reservationH := NewReservationHandler(d.Store)
	paymentH := NewPaymentHandler(d.Store)
	insuranceH := NewInsuranceHandler(d.Store)
	maintenanceH := NewMaintenanceHandler(d.Store)

	authed := Authenticate(d.Issuer)

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(HTTPLogger)
	r.Use(Metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Account lifecycle. The open endpoints sit behind a per-IP token
	// bucket so credential stuffing does not come cheap.
	authLimit := func(name string) func(http.Handler) http.Handler {
		return RateLimit(d.Redis, RouteLimit{Name: name, Capacity: 10, Window: time.Minute})
	}
	r.With(authLimit("register")).Post("/customers/register", authH.Register)
	r.With(authLimit("verify")).Post("/customers/verify", authH.VerifyEmail)
	r.With(authLimit("login")).Post("/customers/login", authH.Login)
	r.With(authLimit("admin_create")).Post("/admin/create", authH.CreateAdmin)

	r.Group(func(r chi.Router) {
		r.Use(authed)
		r.With(AdminOnly).Get("/customers", customerH.GetAll)
		r.With(Authenticated).Get("/customers/{id}", customerH.GetByID)
		r.With(Authenticated).Put("/customers/{id}", customerH.Update)
		r.With(AdminOnly).Delete("/customers/{id}", customerH.Delete)
	})
	r.Get("/customers-with-bookings", customerH.WithBookings)
	r.Get("/customers-with-reservation", customerH.WithReservations)

	r.Route("/cars", func(r chi.Router) {
		r.Get("/", carH.GetAll)
		r.Get("/with-location/all", carH.WithLocation)
		r.Get("/stats/bookings", carH.BookingStats)
		r.Get("/{id}", carH.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authed, AdminOnly)
			r.Post("/", carH.Create)
			r.Put("/{id}", carH.Update)
			r.Delete("/{id}", carH.Delete)
		})
	})

	r.Route("/locations", func(r chi.Router) {
		r.Get("/", locationH.GetAll)
		r.Get("/with-cars", locationH.WithCars)
		r.Get("/with-assigned-cars", locationH.WithAssignedCars)
		r.Get("/{id}", locationH.GetByID)
		r.Post("/", locationH.Create)
		r.Put("/{id}", locationH.Update)
		r.Delete("/{id}", locationH.Delete)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", bookingH.GetAll)
		r.Get("/with-payments", bookingH.WithDetails)
		r.Get("/{id}", bookingH.GetByID)
		r.With(authed, Authenticated).Post("/", bookingH.Create)
		r.With(authed, AdminOnly).Put("/{id}", bookingH.Update)
		r.With(authed, AdminOnly).Delete("/{id}", bookingH.Delete)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", reservationH.GetAll)
		r.Get("/with-details", reservationH.WithDetails)
		r.Get("/{id}", reservationH.GetByID)
		r.Post("/", reservationH.Create)
		r.Put("/{id}", reservationH.Update)
		r.Delete("/{id}", reservationH.Delete)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Get("/", paymentH.GetAll)
		r.Get("/payments-with-booking", paymentH.WithBooking)
		r.Get("/{id}", paymentH.GetByID)
		r.Post("/", paymentH.Create)
		r.Put("/{id}", paymentH.Update)
		r.Delete("/{id}", paymentH.Delete)
	})

	r.Route("/insurance", func(r chi.Router) {
		r.Get("/", insuranceH.GetAll)
		r.Get("/with-car", insuranceH.WithCar)
		r.Get("/{id}", insuranceH.GetByID)
		r.Post("/", insuranceH.Create)
		r.Put("/{id}", insuranceH.Update)
		r.Delete("/{id}", insuranceH.Delete)
	})

	r.Route("/maintenance", func(r chi.Router) {
		r.Get("/", maintenanceH.GetAll)
		r.Get("/with-car", maintenanceH.WithCar)
		r.Get("/{id}", maintenanceH.GetByID)
		r.Post("/", maintenanceH.Create)
		r.Put("/{id}", maintenanceH.Update)
		r.Delete("/{id}", maintenanceH.Delete)
	})

	return r
}
