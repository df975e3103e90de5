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
	"github.com/shopspring/decimal"

	assignRoomHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/assign_room"
	cancelBookingHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/cancel_booking"
	cancelPreBookingHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/cancel_pre_booking"
	checkInHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/check_in"
	checkoutHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/checkout"
	convertPreBookingHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/convert_pre_booking"
	createBookingHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/create_booking"
	createGuestHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/create_guest"
	createPreBookingHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/create_pre_booking"
	deleteGuestHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/delete_guest"
	exportBookingsHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/export_bookings"
	exportGuestsHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/export_guests"
	getBookingHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/get_booking"
	getGuestHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/get_guest"
	housekeepingTasksHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/housekeeping_tasks"
	listBookingsHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/list_bookings"
	listGuestsHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/list_guests"
	listPreBookingsHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/list_pre_bookings"
	listRoomsHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/list_rooms"
	loginHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/login"
	roomAvailabilityHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/room_availability"
	serviceUsageHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/service_usage"
	updateBookingStatusHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/update_booking_status"
	updateGuestHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/update_guest"
	updateRoomStatusHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/update_room_status"
	usersHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/users"
	"github.com/m04kA/HMS-FrontdeskService/internal/api/middleware"
	"github.com/m04kA/HMS-FrontdeskService/internal/config"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	checkinRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/checkin"
	guestRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/guest"
	housekeepingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/housekeeping"
	prebookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/prebooking"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	usageRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/serviceusage"
	userRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/user"
	paymentGatewayClient "github.com/m04kA/HMS-FrontdeskService/internal/integrations/paymentgateway"
	bookingsService "github.com/m04kA/HMS-FrontdeskService/internal/service/bookings"
	guestsService "github.com/m04kA/HMS-FrontdeskService/internal/service/guests"
	housekeepingService "github.com/m04kA/HMS-FrontdeskService/internal/service/housekeeping"
	prebookingsService "github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings"
	roomsService "github.com/m04kA/HMS-FrontdeskService/internal/service/rooms"
	serviceusageService "github.com/m04kA/HMS-FrontdeskService/internal/service/serviceusage"
	usersService "github.com/m04kA/HMS-FrontdeskService/internal/service/users"
	assignRoomUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/assign_room"
	checkInUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/check_in"
	checkoutUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/checkout"
	convertPreBookingUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/convert_prebooking"
	roomAvailabilityUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/room_availability"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/logger"
	"github.com/m04kA/HMS-FrontdeskService/pkg/metrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-FrontdeskService/pkg/txmanager"
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

	log.Info("Starting HMS-FrontdeskService...")
	log.Info("Configuration loaded from config.toml")

	taxRate, err := decimal.NewFromString(cfg.Billing.TaxRate)
	if err != nil {
		log.Fatal("Invalid billing.tax_rate %q: %v", cfg.Billing.TaxRate, err)
	}

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

	// Инициализируем платежный шлюз
	gatewayClient := paymentGatewayClient.NewClient(
		cfg.PaymentGateway.URL,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s timeout=%ds)",
		cfg.PaymentGateway.URL, cfg.PaymentGateway.Timeout)

	// Менеджер токенов доступа
	authManager := middleware.NewManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		guestRepository        *guestRepo.Repository
		roomRepository         *roomRepo.Repository
		prebookingRepository   *prebookingRepo.Repository
		checkinRepository      *checkinRepo.Repository
		userRepository         *userRepo.Repository
		housekeepingRepository *housekeepingRepo.Repository
		usageRepository        *usageRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		prebookingRepository = prebookingRepo.NewRepository(wrappedDB)
		checkinRepository = checkinRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		housekeepingRepository = housekeepingRepo.NewRepository(wrappedDB)
		usageRepository = usageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		prebookingRepository = prebookingRepo.NewRepository(db)
		checkinRepository = checkinRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		housekeepingRepository = housekeepingRepo.NewRepository(db)
		usageRepository = usageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, guestRepository, log)
	guestSvc := guestsService.NewService(guestRepository, log)
	roomSvc := roomsService.NewService(roomRepository, log)
	prebookingSvc := prebookingsService.NewService(prebookingRepository, guestRepository, log)
	userSvc := usersService.NewService(userRepository, authManager, log)
	housekeepingSvc := housekeepingService.NewService(housekeepingRepository, roomRepository, log)
	usageSvc := serviceusageService.NewService(usageRepository, bookingRepository, serviceusageService.RealTimeProvider{}, log)

	// Инициализируем use cases
	checkInUseCase := checkInUC.NewUseCase(checkinRepository, bookingRepository, roomRepository, txMgr, log)
	checkoutUseCase := checkoutUC.NewUseCase(
		bookingRepository,
		roomRepository,
		usageRepository,
		housekeepingRepository,
		gatewayClient,
		txMgr,
		taxRate,
		log,
	)
	assignRoomUseCase := assignRoomUC.NewUseCase(bookingRepository, roomRepository, txMgr, log)
	convertPreBookingUseCase := convertPreBookingUC.NewUseCase(
		prebookingRepository,
		bookingRepository,
		roomRepository,
		txMgr,
		log,
	)
	roomAvailabilityUseCase := roomAvailabilityUC.NewUseCase(roomRepository, bookingRepository, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(userSvc, log)
	usersH := usersHandler.NewHandler(userSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)

	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(roomSvc, log)
	roomAvailability := roomAvailabilityHandler.NewHandler(roomAvailabilityUseCase, log)

	assignRoom := assignRoomHandler.NewHandler(assignRoomUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)

	listPreBookings := listPreBookingsHandler.NewHandler(prebookingSvc, log)
	createPreBooking := createPreBookingHandler.NewHandler(prebookingSvc, log)
	cancelPreBooking := cancelPreBookingHandler.NewHandler(prebookingSvc, log)
	convertPreBooking := convertPreBookingHandler.NewHandler(convertPreBookingUseCase, log)

	listGuests := listGuestsHandler.NewHandler(guestSvc, log)
	createGuest := createGuestHandler.NewHandler(guestSvc, log)
	getGuest := getGuestHandler.NewHandler(guestSvc, log)
	updateGuest := updateGuestHandler.NewHandler(guestSvc, log)
	deleteGuest := deleteGuestHandler.NewHandler(guestSvc, log)
	exportGuests := exportGuestsHandler.NewHandler(guestSvc, log)

	housekeepingTasks := housekeepingTasksHandler.NewHandler(housekeepingSvc, log)
	serviceUsage := serviceUsageHandler.NewHandler(usageSvc, log)

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

	// Вход оператора
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Списки бронирований и номерного фонда доступны на чтение без токена
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/availability", roomAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/room-types", listRooms.HandleTypes).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authManager.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Назначение номера ---
	protected.HandleFunc("/bookings/{bookingId}/rooms/{roomId}/check", assignRoom.HandleCheck).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/assign-room", assignRoom.Handle).Methods(http.MethodPost)

	// --- Мастер заселения ---
	protected.HandleFunc("/bookings/{bookingId}/check-in/start", checkIn.HandleStart).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkIn.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/check-in/next", checkIn.HandleNext).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-in/previous", checkIn.HandlePrevious).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-in/complete", checkIn.HandleComplete).Methods(http.MethodPost)

	// --- Выселение и фолио ---
	protected.HandleFunc("/bookings/{bookingId}/folio", checkout.HandleFolio).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/checkout", checkout.Handle).Methods(http.MethodPost)

	// --- Услуги по бронированию ---
	protected.HandleFunc("/bookings/{bookingId}/service-usage", serviceUsage.HandleListByBooking).Methods(http.MethodGet)
	protected.HandleFunc("/service-usage", serviceUsage.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/service-usage", serviceUsage.HandleCreate).Methods(http.MethodPost)

	// --- Заявки (pre-bookings) ---
	protected.HandleFunc("/pre-bookings", listPreBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/pre-bookings", createPreBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/pre-bookings/{preBookingId}", listPreBookings.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/pre-bookings/{preBookingId}/cancel", cancelPreBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/pre-bookings/{preBookingId}/convert", convertPreBooking.Handle).Methods(http.MethodPost)

	// --- Номерной фонд ---
	protected.HandleFunc("/rooms/availability/export", roomAvailability.HandleExport).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}/status", updateRoomStatus.Handle).Methods(http.MethodPatch)

	// --- Гости ---
	protected.HandleFunc("/guests", listGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests", createGuest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/guests/export", exportGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/{guestId}", getGuest.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/{guestId}", updateGuest.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/guests/{guestId}", deleteGuest.Handle).Methods(http.MethodDelete)

	// --- Уборка ---
	protected.HandleFunc("/housekeeping/tasks", housekeepingTasks.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/housekeeping/tasks", housekeepingTasks.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/housekeeping/tasks/{taskId}/status", housekeepingTasks.HandleUpdateStatus).Methods(http.MethodPatch)

	// --- Сотрудники ---
	protected.HandleFunc("/users", usersH.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/users", usersH.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}", usersH.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", usersH.HandleUpdate).Methods(http.MethodPut)
	// Удаление - мягкое: учетная запись деактивируется, история сохраняется
	protected.HandleFunc("/users/{userId}", usersH.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{userId}/deactivate", usersH.HandleDeactivate).Methods(http.MethodPatch)

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

	log.Info("Server exited")
}
