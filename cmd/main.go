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

	cancelAppointmentHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/cancel_appointment"
	createClientHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/create_client"
	createScheduleDayHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/create_schedule_day"
	getAvailableSlotsHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/get_booked_slots"
	getClientHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/get_client"
	getScheduleDayHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/get_schedule_day"
	listClientsHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/list_clients"
	reserveAppointmentHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/reserve_appointment"
	updateClientHandler "github.com/m0rzhov/PTS-TimetableService/internal/api/handlers/update_client"
	"github.com/m0rzhov/PTS-TimetableService/internal/api/middleware"
	"github.com/m0rzhov/PTS-TimetableService/internal/config"
	appointmentRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/appointment"
	clientRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/client"
	scheduleRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/schedule"
	timeslotRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/timeslot"
	clientsService "github.com/m0rzhov/PTS-TimetableService/internal/service/clients"
	scheduleService "github.com/m0rzhov/PTS-TimetableService/internal/service/schedule"
	cancelAppointmentUC "github.com/m0rzhov/PTS-TimetableService/internal/usecase/cancel_appointment"
	getAvailableSlotsUC "github.com/m0rzhov/PTS-TimetableService/internal/usecase/get_available_slots"
	getBookedSlotsUC "github.com/m0rzhov/PTS-TimetableService/internal/usecase/get_booked_slots"
	reserveAppointmentUC "github.com/m0rzhov/PTS-TimetableService/internal/usecase/reserve_appointment"
	"github.com/m0rzhov/PTS-TimetableService/pkg/dbmetrics"
	"github.com/m0rzhov/PTS-TimetableService/pkg/logger"
	"github.com/m0rzhov/PTS-TimetableService/pkg/metrics"
	"github.com/m0rzhov/PTS-TimetableService/pkg/simpletxmanager"
	"github.com/m0rzhov/PTS-TimetableService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting PTS-TimetableService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		clientRepository      *clientRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		timeslotRepository    *timeslotRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		clientRepository = clientRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		clientRepository = clientRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	clientsSvc := clientsService.NewService(clientRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	reserveAppointmentUseCase := reserveAppointmentUC.NewUseCase(
		clientRepository,
		scheduleRepository,
		timeslotRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		appointmentRepository,
		timeslotRepository,
		txMgr,
		log,
	)

	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(
		scheduleRepository,
		timeslotRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		timeslotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	reserveAppointment := reserveAppointmentHandler.NewHandler(reserveAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createClient := createClientHandler.NewHandler(clientsSvc, log)
	getClient := getClientHandler.NewHandler(clientsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	updateClient := updateClientHandler.NewHandler(clientsSvc, log)
	createScheduleDay := createScheduleDayHandler.NewHandler(scheduleSvc, log)
	getScheduleDay := getScheduleDayHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты ---
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPut)

	// --- Расписание ---
	api.HandleFunc("/schedule", createScheduleDay.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule", getScheduleDay.Handle).Methods(http.MethodGet)

	// --- Слоты и записи ---
	api.HandleFunc("/timetable/all", getBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/timetable/available", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/timetable/reserve", reserveAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/timetable/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
