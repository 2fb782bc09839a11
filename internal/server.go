package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/benbjohnson/clock"
	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/badges"
	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/goals"
	"github.com/2beens/fittracker/internal/middleware"
	"github.com/2beens/fittracker/internal/progress"
	"github.com/2beens/fittracker/internal/reminders"
	"github.com/2beens/fittracker/internal/stats"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"
)

const (
	loginRouteName  = "login"
	shutdownTimeout = 15 * time.Second
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	validate *validator.Validate
	dbPool   *pgxpool.Pool

	redisClient  *redis.Client
	rateLimiter  middleware.RequestRateLimiter
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	streaks        *progress.StreakCalculator
	goalEvaluator  *progress.GoalEvaluator
	badgeEvaluator *progress.BadgeEvaluator

	scheduler     *reminders.Scheduler
	kafkaNotifier *reminders.KafkaNotifier

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	JWTSecret               string
	RedisPassword           string
	DBPassword              string
	HoneycombTracingEnabled bool
	OtelServiceName         string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve timezone: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.RunMigrations(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittracker", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	serviceName := params.OtelServiceName
	if serviceName == "" {
		serviceName = "fittracker-backend"
	}
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	tokens := auth.NewTokenManager(params.JWTSecret, cfg.SessionTTL.Duration, clk)
	loginChecker := auth.NewLoginChecker(tokens, rdb)
	authService := auth.NewService(auth.NewRepo(dbPool), tokens, loginChecker, rdb)

	streaks := progress.NewStreakCalculator(clk, location)

	var notifier reminders.Notifier = reminders.LogNotifier{}
	var kafkaNotifier *reminders.KafkaNotifier
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier = reminders.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaRemindersTopic)
		notifier = reminders.MultiNotifier{reminders.LogNotifier{}, kafkaNotifier}
		log.Debugf("reminder notifications published to kafka topic [%s]", cfg.KafkaRemindersTopic)
	}

	scheduler := reminders.NewScheduler(reminders.SchedulerParams{
		Clock:          clk,
		Location:       location,
		Store:          reminders.NewRepo(dbPool),
		Notifier:       notifier,
		MetricsManager: metricsManager,
		CleanupEvery:   cfg.ReminderCleanupEvery.Duration,
		SendTimeout:    cfg.ReminderSendTimeout.Duration,
	})

	return &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		dbPool:      dbPool,

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		loginChecker: loginChecker,
		authService:  authService,

		streaks:        streaks,
		goalEvaluator:  progress.NewGoalEvaluator(streaks),
		badgeEvaluator: progress.NewBadgeEvaluator(progress.DefaultCatalog()),

		scheduler:     scheduler,
		kafkaNotifier: kafkaNotifier,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS").Name("root")

	authHandler := auth.NewHandler(s.authService, s.validate)
	loginRateLimit := middleware.RateLimit(
		s.rateLimiter,
		loginRouteName,
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	)
	r.HandleFunc("/api/auth/register", authHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/api/auth/login", loginRateLimit(http.HandlerFunc(authHandler.HandleLogin))).Methods("POST", "OPTIONS").Name(loginRouteName)
	r.HandleFunc("/api/auth/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/api/auth/update-email", authHandler.HandleUpdateEmail).Methods("PUT", "OPTIONS").Name("update-email")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, s.validate, s.metricsManager)
	r.HandleFunc("/api/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	goalsHandler := goals.NewHandler(
		goals.NewRepo(s.dbPool),
		workoutsRepo,
		s.goalEvaluator,
		s.validate,
		s.metricsManager,
	)
	r.HandleFunc("/api/goals", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/api/goals", goalsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/api/goals/{id}/progress", goalsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("goal-progress")
	r.HandleFunc("/api/goals/{id}", goalsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	r.HandleFunc("/api/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")

	badgesHandler := badges.NewHandler(
		badges.NewService(
			badges.NewRepo(s.dbPool),
			workoutsRepo,
			s.badgeEvaluator,
			s.streaks,
			s.metricsManager,
		),
		s.validate,
	)
	r.HandleFunc("/api/badges", badgesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-badges")
	r.HandleFunc("/api/badges", badgesHandler.HandleAward).Methods("POST", "OPTIONS").Name("award-badge")
	r.HandleFunc("/api/badges/catalog", badgesHandler.HandleCatalog).Methods("GET", "OPTIONS").Name("badges-catalog")
	r.HandleFunc("/api/badges/check", badgesHandler.HandleCheck).Methods("POST", "OPTIONS").Name("check-badges")
	r.HandleFunc("/api/badges/{badgeId}/progress", badgesHandler.HandleProgress).Methods("GET", "OPTIONS").Name("badge-progress")
	r.HandleFunc("/api/badges/{id}", badgesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-badge")

	remindersHandler := reminders.NewHandler(reminders.NewRepo(s.dbPool), s.scheduler, s.validate)
	r.HandleFunc("/api/reminders", remindersHandler.HandleList).Methods("GET", "OPTIONS").Name("list-reminders")
	r.HandleFunc("/api/reminders", remindersHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-reminder")
	r.HandleFunc("/api/reminders/{id}", remindersHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-reminder")
	r.HandleFunc("/api/reminders/{id}", remindersHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-reminder")

	statsHandler := stats.NewHandler(workoutsRepo, s.streaks)
	r.HandleFunc("/api/stats/summary", statsHandler.HandleSummary).Methods("GET", "OPTIONS").Name("stats-summary")
	r.HandleFunc("/api/stats/streaks", statsHandler.HandleStreaks).Methods("GET", "OPTIONS").Name("stats-streaks")
	r.HandleFunc("/api/stats/streaks/history", statsHandler.HandleStreakHistory).Methods("GET", "OPTIONS").Name("stats-streak-history")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	if s.versionInfo != "" {
		w.Header().Set("X-Version", s.versionInfo)
	}
	pkg.WriteTextResponseOK(w, "Fitness Tracker API is running")
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	if err := s.scheduler.Start(ctx); err != nil {
		// the cleanup loop keeps retrying the load
		log.Errorf("start reminders scheduler: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()

	// stop taking requests first, handlers still use the scheduler and the db
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	s.scheduler.Stop()

	if s.kafkaNotifier != nil {
		if err := s.kafkaNotifier.Close(); err != nil {
			log.Errorf("failed to close kafka writer: %s", err)
		}
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
