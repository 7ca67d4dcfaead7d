package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking"
	createEvaluationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_evaluation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_booking"
	getBusinessHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_business"
	getEvaluationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_evaluation"
	getSeriesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_series"
	getServiceHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_service"
	listProductsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_products"
	listServicesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_services"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/bootstrap"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	evaluationsService "github.com/m04kA/SMC-SchedulingService/internal/service/evaluations"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/commitments"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	createEvaluationUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_evaluation"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Подключаемся к хранилищу и применяем миграции
	store, err := bootstrap.OpenStorage(ctx, cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.Close()

	applied, err := store.Migrate(ctx, log)
	if err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Schema is up to date (applied=%d)", applied)

	// Каталог и рабочие часы
	catalogSvc := bootstrap.NewCatalog(cfg, log)
	wh := catalogSvc.WorkingHours()
	loc, err := wh.Location()
	if err != nil {
		log.Fatal("Invalid timezone %s: %v", wh.Timezone, err)
	}
	log.Info("Catalog loaded (services=%d, products=%d, timezone=%s)",
		len(cfg.Services), len(cfg.Products), wh.Timezone)

	// Инициализируем сервисы
	recorder := metrics.NewRecorder(metricsCollector)
	loader := commitments.NewLoader(store.Bookings, store.Evaluations)
	bookingSvc := bookingsService.NewService(store.Bookings, loc, log)
	evaluationSvc := evaluationsService.NewService(store.Evaluations, loc, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogSvc,
		loader,
		recorder,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		catalogSvc,
		store.Bookings,
		store.Evaluations,
		loader,
		store.TxManager,
		recorder,
		log,
	)

	createEvaluationUseCase := createEvaluationUC.NewUseCase(
		catalogSvc,
		store.Evaluations,
		loader,
		store.TxManager,
		recorder,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listProducts := listProductsHandler.NewHandler(catalogSvc)
	getBusiness := getBusinessHandler.NewHandler(catalogSvc)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, loc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getSeries := getSeriesHandler.NewHandler(bookingSvc, log)
	createEvaluation := createEvaluationHandler.NewHandler(createEvaluationUseCase, loc, log)
	getEvaluation := getEvaluationHandler.NewHandler(evaluationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business", getBusiness.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Лимит на создание записей и оценок
	limitWrites := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.Server.WriteRatePerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.WriteRatePerMinute, cfg.Server.WriteRateBurst)
		limitWrites = func(h http.HandlerFunc) http.Handler { return limiter.Middleware()(h) }
		log.Info("Write rate limit: %d/min, burst=%d", cfg.Server.WriteRatePerMinute, cfg.Server.WriteRateBurst)
	}

	// --- Записи ---
	api.Handle("/bookings", limitWrites(createBooking.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/series/{seriesId}", getSeries.Handle).Methods(http.MethodGet)

	// --- Оценки ---
	api.Handle("/evaluations", limitWrites(createEvaluation.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/evaluations/{evaluationId}", getEvaluation.Handle).Methods(http.MethodGet)

	// CORS снаружи роутера: preflight OPTIONS не совпадает ни с одним маршрутом
	var handler http.Handler = r
	if len(cfg.Server.CORSOrigins) > 0 {
		handler = middleware.CORS(cfg.Server.CORSOrigins)(r)
		log.Info("CORS enabled for %v", cfg.Server.CORSOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
