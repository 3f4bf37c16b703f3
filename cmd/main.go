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

	cancelAppointmentHandler "github.com/medagenda/scheduling-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/medagenda/scheduling-service/internal/api/handlers/create_appointment"
	createWorkHoursHandler "github.com/medagenda/scheduling-service/internal/api/handlers/create_work_hours"
	deleteWorkHoursHandler "github.com/medagenda/scheduling-service/internal/api/handlers/delete_work_hours"
	getAppointmentHandler "github.com/medagenda/scheduling-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/medagenda/scheduling-service/internal/api/handlers/get_available_slots"
	getDoctorAppointmentsHandler "github.com/medagenda/scheduling-service/internal/api/handlers/get_doctor_appointments"
	getDoctorWorkHoursHandler "github.com/medagenda/scheduling-service/internal/api/handlers/get_doctor_work_hours"
	getPatientAppointmentsHandler "github.com/medagenda/scheduling-service/internal/api/handlers/get_patient_appointments"
	searchDoctorsByDateHandler "github.com/medagenda/scheduling-service/internal/api/handlers/search_doctors_by_date"
	updateAppointmentStatusHandler "github.com/medagenda/scheduling-service/internal/api/handlers/update_appointment_status"
	updateWorkHoursHandler "github.com/medagenda/scheduling-service/internal/api/handlers/update_work_hours"
	"github.com/medagenda/scheduling-service/internal/api/middleware"
	"github.com/medagenda/scheduling-service/internal/config"
	appointmentRepo "github.com/medagenda/scheduling-service/internal/infra/storage/appointment"
	workHoursRepo "github.com/medagenda/scheduling-service/internal/infra/storage/workhours"
	doctorServiceClient "github.com/medagenda/scheduling-service/internal/integrations/doctorservice"
	whatsAppBridgeClient "github.com/medagenda/scheduling-service/internal/integrations/whatsappbridge"
	appointmentsService "github.com/medagenda/scheduling-service/internal/service/appointments"
	workHoursService "github.com/medagenda/scheduling-service/internal/service/workhours"
	createAppointmentUC "github.com/medagenda/scheduling-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/medagenda/scheduling-service/internal/usecase/get_available_slots"
	searchDoctorsByDateUC "github.com/medagenda/scheduling-service/internal/usecase/search_doctors_by_date"
	"github.com/medagenda/scheduling-service/pkg/dbmetrics"
	"github.com/medagenda/scheduling-service/pkg/logger"
	"github.com/medagenda/scheduling-service/pkg/metrics"
	"github.com/medagenda/scheduling-service/pkg/simpletxmanager"
	"github.com/medagenda/scheduling-service/pkg/txmanager"
)

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

	log.Info("Starting scheduling-service...")
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

	doctorClient := doctorServiceClient.NewClient(
		cfg.DoctorService.URL,
		time.Duration(cfg.DoctorService.Timeout)*time.Second,
		log,
	)
	whatsAppClient := whatsAppBridgeClient.NewClient(
		cfg.WhatsAppBridge.URL,
		time.Duration(cfg.WhatsAppBridge.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (DoctorService=%s timeout=%ds, WhatsAppBridge=%s timeout=%ds)",
		cfg.DoctorService.URL, cfg.DoctorService.Timeout, cfg.WhatsAppBridge.URL, cfg.WhatsAppBridge.Timeout)

	var (
		appointmentRepository *appointmentRepo.Repository
		workHoursRepository   *workHoursRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		workHoursRepository = workHoursRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		workHoursRepository = workHoursRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	workHoursSvc := workHoursService.NewService(workHoursRepository, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		workHoursRepository,
		doctorClient,
		whatsAppClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		workHoursRepository,
		appointmentRepository,
		log,
	)
	searchDoctorsByDateUseCase := searchDoctorsByDateUC.NewUseCase(
		workHoursRepository,
		appointmentRepository,
		log,
	)

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	searchDoctorsByDate := searchDoctorsByDateHandler.NewHandler(searchDoctorsByDateUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getDoctorAppointments := getDoctorAppointmentsHandler.NewHandler(appointmentSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentSvc, log)
	createWorkHours := createWorkHoursHandler.NewHandler(workHoursSvc, log)
	getDoctorWorkHours := getDoctorWorkHoursHandler.NewHandler(workHoursSvc, log)
	updateWorkHours := updateWorkHoursHandler.NewHandler(workHoursSvc, log)
	deleteWorkHours := deleteWorkHoursHandler.NewHandler(workHoursSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: patient-facing availability views

	api.HandleFunc("/doctors/available-by-date",
		searchDoctorsByDate.Handle).Methods(http.MethodGet)

	api.HandleFunc("/doctors/{doctorId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/doctors/{doctorId}/work-hours",
		getDoctorWorkHours.Handle).Methods(http.MethodGet)

	// Protected routes: require X-User-ID header

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/doctors/{doctorId}/appointments", getDoctorAppointments.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/patients/{patientId}/appointments", getPatientAppointments.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/work-hours", createWorkHours.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/work-hours/{ruleId}", updateWorkHours.Handle).Methods(http.MethodPut)

	protected.HandleFunc("/work-hours/{ruleId}", deleteWorkHours.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
