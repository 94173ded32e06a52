package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brickmate/leadbook/internal/infra/database"
	"github.com/brickmate/leadbook/internal/infra/http/handlers"
	"github.com/brickmate/leadbook/internal/infra/http/middleware"
	"github.com/brickmate/leadbook/internal/infra/integration/supabase"
	"github.com/brickmate/leadbook/internal/infra/mail"
	"github.com/brickmate/leadbook/internal/infra/queue"
	"github.com/brickmate/leadbook/internal/infra/scheduler"
	"github.com/brickmate/leadbook/internal/logger"
	"github.com/brickmate/leadbook/internal/usecase"
)

func main() {
	godotenv.Load()
	logger.Init("leadbook-api")

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// 1. Repositories
	propertyRepo := database.NewPropertyRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Gateways and adapters
	authClient := supabase.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"))

	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "noreply@leadbook.app"),
	)

	// The event pipeline is optional: without a broker, lead commands still
	// work, they just publish nothing.
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"), envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"), envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		logger.Log.Warnf("RabbitMQ unavailable, lead events disabled: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// 3. Worker (drains the queue, sends the offer-accepted email)
		worker := queue.NewWorker(rabbitMQ.Ch, userRepo, mailSender)
		go worker.Start(queue.QueueName)
	}

	// 4. UseCases
	manageLeadsUC := usecase.NewManageLeadsUseCase(propertyRepo, producer)
	importLeadsUC := usecase.NewImportLeadsUseCase(manageLeadsUC, userRepo, mailSender)

	// 5. Handlers
	propertyHandler := handlers.NewPropertyHandler(manageLeadsUC)
	importHandler := handlers.NewImportHandler(importLeadsUC)
	calculatorHandler := handlers.NewCalculatorHandler()
	authHandler := handlers.NewAuthHandler(authClient, userRepo)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// 6. Daily follow-up digest
	digest := scheduler.New(propertyRepo, mailSender, os.Getenv("DIGEST_CRON"))
	if err := digest.Start(); err != nil {
		logger.Log.Warnf("digest scheduler not started: %v", err)
	}
	defer digest.Stop()

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.HandleSignUp)
		r.Post("/signin", authHandler.HandleSignIn)
		r.Post("/signout", authHandler.HandleSignOut)
		r.Get("/google", authHandler.HandleGoogleSignIn)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(authClient))

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandler.HandleList)
			r.Post("/", propertyHandler.HandleCreate)
			r.Post("/import", importHandler.Handle)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", propertyHandler.HandleGet)
				r.Put("/", propertyHandler.HandleEdit)
				r.Delete("/", propertyHandler.HandleDelete)
				r.Post("/restore", propertyHandler.HandleRestore)
				r.Delete("/purge", propertyHandler.HandlePurge)
				r.Patch("/offer-status", propertyHandler.HandleOfferStatus)
				r.Patch("/contacted", propertyHandler.HandleContacted)
				r.Patch("/created-at", propertyHandler.HandleCreatedAt)
				r.Put("/notes", propertyHandler.HandleNotes)
				r.Post("/refresh-financing", propertyHandler.HandleRefreshFinancing)
			})
		})

		r.Post("/notes/line-break", propertyHandler.HandleNotesLineBreak)

		r.Route("/calculators", func(r chi.Router) {
			r.Post("/loan", calculatorHandler.HandleLoan)
			r.Post("/returns", calculatorHandler.HandleReturns)
		})
	})

	port := ":" + envOr("PORT", "8080")
	logger.Log.Infof("leadbook API listening on %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Log.Fatalf("server stopped: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
