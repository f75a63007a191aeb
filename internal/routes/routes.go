package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/renukapahade/sprouts-coach-connect/internal/config"
	"github.com/renukapahade/sprouts-coach-connect/internal/handlers"
	"github.com/renukapahade/sprouts-coach-connect/internal/middleware"
	"github.com/renukapahade/sprouts-coach-connect/internal/repository"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, log *zap.Logger) {
	coachRepo := repository.NewCoachRepository(db)
	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	sessionScheduler := repository.NewSessionScheduler(db)
	bookingRepo := repository.NewBookingRepository(db)

	gateway := services.NewCashfreeGateway(
		cfg.CashfreeBaseURL,
		cfg.CashfreeAppID,
		cfg.CashfreeSecretKey,
		cfg.BaseURL,
	)

	slotService := services.NewSlotService(coachRepo, sessionRepo, subscriptionRepo)
	subscriptionService := services.NewSubscriptionService(coachRepo, userRepo, subscriptionRepo, sessionRepo, sessionScheduler, gateway, log)
	bookingService := services.NewBookingService(coachRepo, bookingRepo)
	seedService := services.NewSeedService(coachRepo, userRepo, log)

	coachHandler := handlers.NewCoachHandler(coachRepo, slotService, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, slotService, log)
	paymentHandler := handlers.NewPaymentHandler(subscriptionService, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	adminHandler := handlers.NewAdminHandler(seedService, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	coaches := api.Group("/coaches")
	coaches.Get("/", coachHandler.ListCoaches)
	coaches.Post("/", coachHandler.CreateCoach)
	coaches.Get("/:id", coachHandler.GetCoach)
	coaches.Get("/:id/slots", coachHandler.GetCoachSlots)

	users := api.Group("/users")
	users.Post("/", userHandler.CreateUser)
	users.Get("/:email", userHandler.GetUserByEmail)

	subscriptions := api.Group("/subscriptions")
	subscriptions.Post("/", subscriptionHandler.CreateSubscription)
	subscriptions.Get("/", subscriptionHandler.ListSubscriptions)
	subscriptions.Get("/:id/sessions", subscriptionHandler.GetSubscriptionUsage)

	api.Post("/sessions", subscriptionHandler.ScheduleSession)

	payments := api.Group("/payments")
	payments.Post("/create-session", paymentHandler.CreatePaymentSession)
	payments.Post("/verify", paymentHandler.VerifyPayment)

	api.Post("/bookings", bookingHandler.CreateBooking)

	if cfg.SeedEnabled() {
		admin := api.Group("/admin", middleware.AdminRequired(cfg.AdminAPIKey))
		admin.Post("/seed", adminHandler.SeedDatabase)
	}

	if cfg.DocsEnabled() {
		app.Get("/api/docs", docsHandler())
	}
}
