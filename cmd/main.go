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

	blockSlotHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/block_slot"
	createBookingHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/get_available_slots"
	getBlockedSlotsHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/get_blocked_slots"
	getBookingHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/get_day_bookings"
	getGuestBookingsHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/get_guest_bookings"
	getWaitlistHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/get_waitlist"
	joinWaitlistHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/join_waitlist"
	rebookBookingHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/rebook_booking"
	removeWaitlistEntryHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/remove_waitlist_entry"
	unblockSlotHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/unblock_slot"
	updateBookingStatusHandler "github.com/m04kA/SMC-DayCenterService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-DayCenterService/internal/api/middleware"
	"github.com/m04kA/SMC-DayCenterService/internal/config"
	blockedSlotRepo "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/blockedslot"
	bookingRepo "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/booking"
	waitlistRepo "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/waitlist"
	guestDirectoryClient "github.com/m04kA/SMC-DayCenterService/internal/integrations/guestdirectory"
	blockedSlotsService "github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots"
	bookingsService "github.com/m04kA/SMC-DayCenterService/internal/service/bookings"
	waitlistService "github.com/m04kA/SMC-DayCenterService/internal/service/waitlist"
	allocateBookingUC "github.com/m04kA/SMC-DayCenterService/internal/usecase/allocate_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-DayCenterService/internal/usecase/get_available_slots"
	rebookBookingUC "github.com/m04kA/SMC-DayCenterService/internal/usecase/rebook_booking"
	"github.com/m04kA/SMC-DayCenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DayCenterService/pkg/logger"
	"github.com/m04kA/SMC-DayCenterService/pkg/metrics"
	"github.com/m04kA/SMC-DayCenterService/pkg/orgtime"
	"github.com/m04kA/SMC-DayCenterService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DayCenterService/pkg/txmanager"
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

	log.Info("Starting SMC-DayCenterService...")
	log.Info("Configuration loaded from config.toml")

	// Календарь организации: все даты бронирований резолвятся в локальной
	// таймзоне центра
	clock, err := orgtime.New(cfg.Organization.Timezone)
	if err != nil {
		log.Fatal("Failed to load organization timezone: %v", err)
	}
	log.Info("Organization timezone: %s", cfg.Organization.Timezone)

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

	// Инициализируем клиента GuestDirectory
	guestClient := guestDirectoryClient.NewClient(
		cfg.GuestDirectory.URL,
		time.Duration(cfg.GuestDirectory.Timeout)*time.Second,
		log,
	)
	log.Info("GuestDirectory client initialized (url=%s, timeout=%ds)",
		cfg.GuestDirectory.URL, cfg.GuestDirectory.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		waitlistRepository    *waitlistRepo.Repository
		blockedSlotRepository *blockedSlotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		waitlistRepository = waitlistRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		waitlistRepository = waitlistRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		clock,
		log,
	)
	waitlistSvc := waitlistService.NewService(
		waitlistRepository,
		bookingRepository,
		blockedSlotRepository,
		log,
	)
	blockedSlotsSvc := blockedSlotsService.NewService(
		blockedSlotRepository,
		log,
	)

	// Инициализируем use cases
	allocateBookingUseCase := allocateBookingUC.NewUseCase(
		bookingRepository,
		waitlistRepository,
		blockedSlotRepository,
		guestClient,
		txMgr,
		clock,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockedSlotRepository,
		clock,
		log,
	)

	rebookBookingUseCase := rebookBookingUC.NewUseCase(
		bookingRepository,
		waitlistRepository,
		blockedSlotRepository,
		txMgr,
		clock,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(allocateBookingUseCase, clock, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, clock, log)
	rebookBooking := rebookBookingHandler.NewHandler(rebookBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, clock, log)
	getWaitlist := getWaitlistHandler.NewHandler(waitlistSvc, clock, log)
	joinWaitlist := joinWaitlistHandler.NewHandler(waitlistSvc, clock, log)
	removeWaitlistEntry := removeWaitlistEntryHandler.NewHandler(waitlistSvc, log)
	blockSlot := blockSlotHandler.NewHandler(blockedSlotsSvc, clock, log)
	unblockSlot := unblockSlotHandler.NewHandler(blockedSlotsSvc, log)
	getBlockedSlots := getBlockedSlotsHandler.NewHandler(blockedSlotsSvc, clock, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты с занятостью на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования (аллокация слота или лист ожидания)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Повторное размещение отмененного или no_show бронирования
	protected.HandleFunc("/bookings/{bookingId}/rebook", rebookBooking.Handle).Methods(http.MethodPost)

	// История бронирований гостя
	protected.HandleFunc("/guests/{guestId}/bookings", getGuestBookings.Handle).Methods(http.MethodGet)

	// --- Дневной журнал ---
	// Бронирования на календарный день
	protected.HandleFunc("/schedule/{date}/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Лист ожидания на день (FIFO)
	protected.HandleFunc("/schedule/{date}/waitlist", getWaitlist.Handle).Methods(http.MethodGet)

	// Блокировки слотов на день
	protected.HandleFunc("/schedule/{date}/blocked-slots", getBlockedSlots.Handle).Methods(http.MethodGet)

	// --- Лист ожидания ---
	// Явная постановка в лист ожидания (только когда свободных слотов нет)
	protected.HandleFunc("/waitlist", joinWaitlist.Handle).Methods(http.MethodPost)

	// Снятие записи с листа ожидания
	protected.HandleFunc("/waitlist/{entryId}", removeWaitlistEntry.Handle).Methods(http.MethodDelete)

	// --- Блокировки слотов ---
	// Блокировка слота
	protected.HandleFunc("/blocked-slots", blockSlot.Handle).Methods(http.MethodPost)

	// Снятие блокировки
	protected.HandleFunc("/blocked-slots/{blockId}", unblockSlot.Handle).Methods(http.MethodDelete)

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
