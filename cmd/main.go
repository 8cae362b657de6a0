package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/create_booking"
	generateSlotsHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/get_booking"
	getFieldBookingsHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/get_field_bookings"
	getUserBookingsHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/get_user_bookings"
	listCustomersHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/list_customers"
	manageFieldsHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/manage_fields"
	reviewsHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/reviews"
	staffCreateBookingHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/staff_create_booking"
	updateBookingStatusHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/update_booking_status"
	updateSlotHandler "github.com/xarena/XArena-BookingService/internal/api/handlers/update_slot"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	"github.com/xarena/XArena-BookingService/internal/app"
	"github.com/xarena/XArena-BookingService/internal/config"
	bookingRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/booking"
	fieldRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	reviewRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/review"
	slotRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/slot"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	bookingsService "github.com/xarena/XArena-BookingService/internal/service/bookings"
	fieldsService "github.com/xarena/XArena-BookingService/internal/service/fields"
	reviewsService "github.com/xarena/XArena-BookingService/internal/service/reviews"
	slotsService "github.com/xarena/XArena-BookingService/internal/service/slots"
	usersService "github.com/xarena/XArena-BookingService/internal/service/users"
	cancelBookingUC "github.com/xarena/XArena-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/xarena/XArena-BookingService/internal/usecase/create_booking"
	generateSlotsUC "github.com/xarena/XArena-BookingService/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/xarena/XArena-BookingService/internal/usecase/get_available_slots"
	staffCreateBookingUC "github.com/xarena/XArena-BookingService/internal/usecase/staff_create_booking"
	"github.com/xarena/XArena-BookingService/pkg/dbmetrics"
	"github.com/xarena/XArena-BookingService/pkg/logger"
	"github.com/xarena/XArena-BookingService/pkg/metrics"
	"github.com/xarena/XArena-BookingService/pkg/simpletxmanager"
	"github.com/xarena/XArena-BookingService/pkg/txmanager"
)

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting XArena-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	migrator, err := app.NewMigrator(db, migrationsPath)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	version, err := migrator.Version(context.Background())
	if err != nil {
		log.Fatal("Failed to read migration version: %v", err)
	}
	log.Info("Database migrations applied (version=%d)", version)

	var (
		userRepository    *userRepo.Repository
		fieldRepository   *fieldRepo.Repository
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		reviewRepository  *reviewRepo.Repository
	)

	// Transaction manager interface shared by the booking use cases.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		fieldRepository = fieldRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		fieldRepository = fieldRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		fieldRepository,
		userRepository,
		log,
	)
	fieldSvc := fieldsService.NewService(
		fieldRepository,
		reviewRepository,
		userRepository,
		log,
	)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		fieldRepository,
		userRepository,
		log,
	)
	slotSvc := slotsService.NewService(
		slotRepository,
		bookingRepository,
		userRepository,
		log,
	)
	userSvc := usersService.NewService(
		userRepository,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		fieldRepository,
		userRepository,
		txMgr,
		log,
	)
	staffCreateBookingUseCase := staffCreateBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		fieldRepository,
		userRepository,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		userRepository,
		txMgr,
		log,
	)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		fieldRepository,
		userRepository,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		fieldRepository,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	staffCreateBooking := staffCreateBookingHandler.NewHandler(staffCreateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	manageFields := manageFieldsHandler.NewHandler(fieldSvc, log)
	reviews := reviewsHandler.NewHandler(reviewSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	listCustomers := listCustomersHandler.NewHandler(userSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Field catalog
	api.HandleFunc("/fields", manageFields.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}", manageFields.HandleGet).Methods(http.MethodGet)

	// Free slots of a field
	api.HandleFunc("/fields/{fieldId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Reviews of a field
	api.HandleFunc("/fields/{fieldId}/reviews", reviews.HandleList).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Bookings ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.HandleForUser).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Staff desk ---
	protected.HandleFunc("/staff/bookings", staffCreateBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)

	// --- Field management (admins) ---
	protected.HandleFunc("/fields", manageFields.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/fields/{fieldId}", manageFields.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/fields/{fieldId}", manageFields.HandleDelete).Methods(http.MethodDelete)

	// --- Schedule management ---
	protected.HandleFunc("/fields/{fieldId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)

	// --- Reviews ---
	protected.HandleFunc("/fields/{fieldId}/reviews", reviews.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}", reviews.HandleDelete).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
