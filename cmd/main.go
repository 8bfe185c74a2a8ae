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
	"github.com/redis/go-redis/v9"

	addServiceHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/add_service"
	backStepHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/back_step"
	continueStepHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/continue_step"
	createFlowHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/create_flow"
	getBottomBarHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/get_bottom_bar"
	getFlowHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/get_flow"
	getProfessionalsHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/get_professionals"
	getSummaryHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/get_summary"
	getTimeSlotsHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/get_time_slots"
	removeServiceHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/remove_service"
	resetFlowHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/reset_flow"
	selectProfessionalHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/select_professional"
	setDateHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/set_date"
	setTimeSlotHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/set_time_slot"
	watchFlowHandler "github.com/m04kA/SMC-BookingFlow/internal/api/handlers/watch_flow"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/config"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
	flowRepo "github.com/m04kA/SMC-BookingFlow/internal/infra/storage/flow"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage/flowcache"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage/memory"
	bookingAPIClient "github.com/m04kA/SMC-BookingFlow/internal/integrations/bookingapi"
	flowService "github.com/m04kA/SMC-BookingFlow/internal/service/flow"
	getProfessionalsUC "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_professionals"
	getSummaryUC "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_summary"
	getTimeSlotsUC "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_time_slots"
	navigateStepUC "github.com/m04kA/SMC-BookingFlow/internal/usecase/navigate_step"
	selectProfessionalUC "github.com/m04kA/SMC-BookingFlow/internal/usecase/select_professional"
	"github.com/m04kA/SMC-BookingFlow/internal/wizard"
	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
	"github.com/m04kA/SMC-BookingFlow/pkg/metrics"
	"github.com/m04kA/SMC-BookingFlow/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if path := os.Getenv("SMC_CONFIG"); path != "" {
		configPath = path
	}

	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-BookingFlow...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Хранилище состояния
	var (
		repository  flowService.FlowRepository
		redisClient *redis.Client
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		pgRepository := flowRepo.NewRepository(db)
		if err := pgRepository.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare schema: %v", err)
		}
		repository = pgRepository

	case config.BackendRedis:
		redisClient = newRedisClient(ctx, cfg.Redis, log)
		defer redisClient.Close()

		repository = flowcache.NewRepository(redisClient, time.Duration(cfg.Redis.SessionTTL)*time.Second)
		log.Info("Flow state stored in Redis (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.SessionTTL)

	case config.BackendMemory:
		repository = memory.NewRepository()
		log.Warn("Flow state stored in memory, sessions are lost on restart")
	}

	// Уведомления об изменениях: внутри процесса или через Redis между инстансами
	hub := notifier.NewHub()
	var publisher flowService.Notifier = hub

	if cfg.Redis.Channel != "" && cfg.Storage.Backend != config.BackendMemory {
		if redisClient == nil {
			redisClient = newRedisClient(ctx, cfg.Redis, log)
			defer redisClient.Close()
		}

		bridge := notifier.NewRedisBridge(hub, redisClient, cfg.Redis.Channel, log)
		if err := bridge.Start(ctx); err != nil {
			log.Fatal("Failed to start change bridge: %v", err)
		}
		publisher = bridge
		log.Info("Change events relayed via Redis channel %s (instance=%s)", cfg.Redis.Channel, bridge.InstanceID())
	}

	// Инициализируем интеграционных клиентов
	bookingClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BookingAPI=%s timeout=%ds)", cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	// Инициализируем сервисы
	store := flowService.NewStore(repository, publisher, metricsCollector, log)

	// Расписание салона
	location, err := cfg.Salon.Location()
	if err != nil {
		log.Fatal("Invalid salon timezone: %v", err)
	}
	schedule, err := buildSchedule(cfg.Salon)
	if err != nil {
		log.Fatal("Invalid salon schedule: %v", err)
	}

	// Инициализируем use cases
	getProfessionalsUseCase := getProfessionalsUC.NewUseCase(
		store,
		bookingClient,
		hub,
		metricsCollector,
		&getProfessionalsUC.RealTimeProvider{},
		location,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	selectProfessionalUseCase := selectProfessionalUC.NewUseCase(store, getProfessionalsUseCase, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		store,
		schedule,
		location,
		&getTimeSlotsUC.RealTimeProvider{},
		log,
	)
	navigateStepUseCase := navigateStepUC.NewUseCase(store, wizard.NewController(cfg.Wizard.NoticeDelay()), log)
	getSummaryUseCase := getSummaryUC.NewUseCase(store, log)

	// Инициализируем handlers
	createFlow := createFlowHandler.NewHandler(store, log)
	getFlow := getFlowHandler.NewHandler(store, log)
	resetFlow := resetFlowHandler.NewHandler(store, log)
	addService := addServiceHandler.NewHandler(store, log)
	removeService := removeServiceHandler.NewHandler(store, log)
	setDate := setDateHandler.NewHandler(store, log)
	setTimeSlot := setTimeSlotHandler.NewHandler(store, log)
	getProfessionals := getProfessionalsHandler.NewHandler(getProfessionalsUseCase, log)
	selectProfessional := selectProfessionalHandler.NewHandler(selectProfessionalUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getSummary := getSummaryHandler.NewHandler(getSummaryUseCase, log)
	getBottomBar := getBottomBarHandler.NewHandler(getSummaryUseCase, log)
	continueStep := continueStepHandler.NewHandler(navigateStepUseCase, log)
	backStep := backStepHandler.NewHandler(navigateStepUseCase, log)
	watchFlow := watchFlowHandler.NewHandler(hub, metricsCollector, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Создание сессии booking flow
	api.HandleFunc("/flows", createFlow.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("/flow").Subrouter()
	session.Use(middleware.Session(log))

	// --- Состояние ---
	session.HandleFunc("", getFlow.Handle).Methods(http.MethodGet)
	session.HandleFunc("", resetFlow.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/watch", watchFlow.Handle).Methods(http.MethodGet)

	// --- Шаг 1: услуги ---
	session.HandleFunc("/services", addService.Handle).Methods(http.MethodPost)
	session.HandleFunc("/services/{serviceId}", removeService.Handle).Methods(http.MethodDelete)

	// --- Шаг 2: специалист ---
	session.HandleFunc("/professionals", getProfessionals.Handle).Methods(http.MethodGet)
	session.HandleFunc("/professionals/{professionalId}/select", selectProfessional.Handle).Methods(http.MethodPost)
	session.HandleFunc("/bottom-bar", getBottomBar.Handle).Methods(http.MethodGet)

	// --- Шаг 3: дата и время ---
	session.HandleFunc("/date", setDate.Handle).Methods(http.MethodPut)
	session.HandleFunc("/time-slot", setTimeSlot.Handle).Methods(http.MethodPut)
	session.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// --- Навигация ---
	session.HandleFunc("/summary", getSummary.Handle).Methods(http.MethodGet)
	session.HandleFunc("/continue", continueStep.Handle).Methods(http.MethodPost)
	session.HandleFunc("/back", backStep.Handle).Methods(http.MethodPost)

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

	// Останавливаем подписку на Redis
	stop()

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

func newRedisClient(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping redis (addr=%s): %v", cfg.Addr, err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Addr, cfg.DB)

	return client
}

func buildSchedule(salon config.SalonConfig) (getTimeSlotsUC.Schedule, error) {
	openTime, err := types.NewTimeStringFromString(salon.OpenTime)
	if err != nil {
		return getTimeSlotsUC.Schedule{}, fmt.Errorf("open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(salon.CloseTime)
	if err != nil {
		return getTimeSlotsUC.Schedule{}, fmt.Errorf("close_time: %w", err)
	}
	if !openTime.IsBefore(closeTime) {
		return getTimeSlotsUC.Schedule{}, fmt.Errorf("open_time %s must be before close_time %s", openTime, closeTime)
	}

	closed, err := salon.Weekdays()
	if err != nil {
		return getTimeSlotsUC.Schedule{}, err
	}

	return getTimeSlotsUC.Schedule{
		OpenTime:           openTime,
		CloseTime:          closeTime,
		ClosedWeekdays:     closed,
		SlotStepMinutes:    salon.SlotStepMinutes,
		MinNoticeMinutes:   salon.MinNoticeMinutes,
		AdvanceBookingDays: salon.AdvanceBookingDays,
	}, nil
}
