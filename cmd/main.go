package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	blockDatesHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/block_dates"
	cancelBookingHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/cancel_booking"
	createAddonHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/create_addon"
	createBookingHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/create_booking"
	deactivateAddonHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/deactivate_addon"
	getAvailabilityHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/get_availability"
	getTierTableHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/get_tier_table"
	guideApprovalHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/guide_approval"
	listAddonsHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/list_addons"
	quotePriceHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/quote_price"
	replaceSeasonPricesHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/replace_season_prices"
	runDueTasksHandler "github.com/yydtours/YYD-BookingService/internal/api/handlers/run_due_tasks"
	"github.com/yydtours/YYD-BookingService/internal/api/middleware"
	"github.com/yydtours/YYD-BookingService/internal/config"
	"github.com/yydtours/YYD-BookingService/internal/domain"
	availabilityCache "github.com/yydtours/YYD-BookingService/internal/infra/cache/availability"
	addonsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/addons"
	bookingsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/bookings"
	reservationsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/reservations"
	slotsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/slots"
	tasksRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tasks"
	tiersRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tiers"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
	"github.com/yydtours/YYD-BookingService/internal/pricing"
	availabilityService "github.com/yydtours/YYD-BookingService/internal/service/availability"
	catalogService "github.com/yydtours/YYD-BookingService/internal/service/catalog"
	blockDatesUC "github.com/yydtours/YYD-BookingService/internal/usecase/block_dates"
	cancelBookingUC "github.com/yydtours/YYD-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/yydtours/YYD-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/yydtours/YYD-BookingService/internal/usecase/get_availability"
	guideApprovalUC "github.com/yydtours/YYD-BookingService/internal/usecase/guide_approval"
	processTasksUC "github.com/yydtours/YYD-BookingService/internal/usecase/process_scheduled_tasks"
	quotePriceUC "github.com/yydtours/YYD-BookingService/internal/usecase/quote_price"
	"github.com/yydtours/YYD-BookingService/pkg/dbmetrics"
	"github.com/yydtours/YYD-BookingService/pkg/logger"
	"github.com/yydtours/YYD-BookingService/pkg/metrics"
	"github.com/yydtours/YYD-BookingService/pkg/simpletxmanager"
	"github.com/yydtours/YYD-BookingService/pkg/txmanager"
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

	log.Info("Starting YYD-BookingService...")
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

	// Подключаемся к redis для кэша доступности (если включен)
	var dayCache availabilityService.DayCache = availabilityService.NopCache{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		dayCache = availabilityCache.New(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	// Собираем календарь сезонов из конфигурации
	calendar, err := buildCalendar(&cfg.Pricing)
	if err != nil {
		log.Fatal("Failed to build season calendar: %v", err)
	}

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var (
		tourRepository        *toursRepo.Repository
		tierRepository        *tiersRepo.Repository
		addonRepository       *addonsRepo.Repository
		slotRepository        *slotsRepo.Repository
		reservationRepository *reservationsRepo.Repository
		bookingRepository     *bookingsRepo.Repository
		taskRepository        *tasksRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tourRepository = toursRepo.NewRepository(wrappedDB)
		tierRepository = tiersRepo.NewRepository(wrappedDB)
		addonRepository = addonsRepo.NewRepository(wrappedDB)
		slotRepository = slotsRepo.NewRepository(wrappedDB)
		reservationRepository = reservationsRepo.NewRepository(wrappedDB)
		bookingRepository = bookingsRepo.NewRepository(wrappedDB)
		taskRepository = tasksRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tourRepository = toursRepo.NewRepository(db)
		tierRepository = tiersRepo.NewRepository(db)
		addonRepository = addonsRepo.NewRepository(db)
		slotRepository = slotsRepo.NewRepository(db)
		reservationRepository = reservationsRepo.NewRepository(db)
		bookingRepository = bookingsRepo.NewRepository(db)
		taskRepository = tasksRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Движок расчёта цены и ledger доступности
	var anomalies pricing.AnomalyCounter
	var resMetrics availabilityService.ReservationMetrics
	var quoteMetrics quotePriceUC.QuoteMetrics = availabilityService.NopMetrics{}
	if cfg.Metrics.Enabled {
		anomalies = metricsCollector.TierAnomaliesTotal
		resMetrics = metricsCollector
		quoteMetrics = metricsCollector
	}

	resolver := pricing.NewResolver(calendar, log, anomalies)
	ledger := availabilityService.NewService(
		slotRepository,
		reservationRepository,
		bookingRepository,
		dayCache,
		log,
		resMetrics,
	)

	// Сервис каталога (tier-таблицы и дополнения)
	catalogSvc := catalogService.New(
		tierRepository,
		addonRepository,
		tourRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(
		tourRepository,
		tierRepository,
		addonRepository,
		resolver,
		quoteMetrics,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		tourRepository,
		tierRepository,
		addonRepository,
		bookingRepository,
		taskRepository,
		ledger,
		resolver,
		txMgr,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		ledger,
		txMgr,
		log,
	)

	blockDatesUseCase := blockDatesUC.NewUseCase(
		tourRepository,
		ledger,
		txMgr,
		log,
	)

	guideApprovalUseCase := guideApprovalUC.NewUseCase(
		bookingRepository,
		log,
	)

	processTasksUseCase := processTasksUC.NewUseCase(
		taskRepository,
		bookingRepository,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		tourRepository,
		tierRepository,
		ledger,
		resolver,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	blockDates := blockDatesHandler.NewHandler(blockDatesUseCase, log)
	replaceSeasonPrices := replaceSeasonPricesHandler.NewHandler(catalogSvc, log)
	getTierTable := getTierTableHandler.NewHandler(catalogSvc, log)
	createAddon := createAddonHandler.NewHandler(catalogSvc, log)
	deactivateAddon := deactivateAddonHandler.NewHandler(catalogSvc, log)
	listAddons := listAddonsHandler.NewHandler(catalogSvc, log)
	guideApproval := guideApprovalHandler.NewHandler(guideApprovalUseCase, log)
	runDueTasks := runDueTasksHandler.NewHandler(processTasksUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность тура на день
	api.HandleFunc("/tours/{tourId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расчёт стоимости
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// Каталог дополнений
	api.HandleFunc("/addons", listAddons.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Решение гида по назначению ---
	protected.HandleFunc("/bookings/{bookingId}/guide-approval", guideApproval.Handle).Methods(http.MethodPost)

	// --- Управление каталогом и календарём (для персонала) ---
	protected.HandleFunc("/tours/{tourId}/blackouts", blockDates.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tours/{tourId}/season-prices", replaceSeasonPrices.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tours/{tourId}/season-prices", getTierTable.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/addons", createAddon.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/addons/{code}", deactivateAddon.Handle).Methods(http.MethodDelete)

	// --- Poller отложенных задач (внешний cron) ---
	protected.HandleFunc("/internal/tasks/run-due", runDueTasks.Handle).Methods(http.MethodPost)

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

// buildCalendar собирает календарь сезонов из конфигурации.
// Пустая конфигурация даёт календарь по умолчанию (высокий сезон
// май-октябрь плюс 23 декабря - 1 января).
func buildCalendar(cfg *config.PricingConfig) (*pricing.Calendar, error) {
	if len(cfg.Seasons) == 0 && len(cfg.SpecialRanges) == 0 {
		return pricing.DefaultCalendar(), nil
	}

	defaultSeason := domain.Season(cfg.DefaultSeason)
	if !defaultSeason.IsValid() {
		return nil, fmt.Errorf("invalid default season %q", cfg.DefaultSeason)
	}

	months := make([]pricing.MonthRule, 0, len(cfg.Seasons))
	for _, s := range cfg.Seasons {
		season := domain.Season(s.Name)
		if !season.IsValid() {
			return nil, fmt.Errorf("invalid season %q", s.Name)
		}
		months = append(months, pricing.MonthRule{Season: season, Months: s.Months})
	}

	specials := make([]pricing.DateRangeRule, 0, len(cfg.SpecialRanges))
	for _, r := range cfg.SpecialRanges {
		season := domain.Season(r.Season)
		if !season.IsValid() {
			return nil, fmt.Errorf("invalid season %q in special range", r.Season)
		}
		fromMonth, fromDay, err := parseMonthDay(r.From)
		if err != nil {
			return nil, fmt.Errorf("invalid special range from %q: %w", r.From, err)
		}
		toMonth, toDay, err := parseMonthDay(r.To)
		if err != nil {
			return nil, fmt.Errorf("invalid special range to %q: %w", r.To, err)
		}
		specials = append(specials, pricing.DateRangeRule{
			Season:    season,
			FromMonth: fromMonth,
			FromDay:   fromDay,
			ToMonth:   toMonth,
			ToDay:     toDay,
		})
	}

	return pricing.NewCalendar(defaultSeason, months, specials), nil
}

// parseMonthDay разбирает строку "MM-DD"
func parseMonthDay(s string) (month, day int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected MM-DD")
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("bad month")
	}
	day, err = strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("bad day")
	}
	return month, day, nil
}
