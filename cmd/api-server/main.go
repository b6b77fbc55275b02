package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"frankies/internal/pkg/bootstrap"
	"frankies/internal/pkg/config"
	"frankies/internal/pkg/logger"
	"frankies/internal/pkg/mq"
	"frankies/internal/pkg/redisclient"
	"frankies/internal/pkg/tracing"
	"frankies/internal/pkg/zklock"

	accountapp "frankies/internal/service/account/application"
	accountinfra "frankies/internal/service/account/infrastructure"
	accountadapter "frankies/internal/service/account/infrastructure/adapter"
	"frankies/internal/service/account/infrastructure/security"
	accountiface "frankies/internal/service/account/interfaces"

	catalogapp "frankies/internal/service/catalog/application"
	cataloginfra "frankies/internal/service/catalog/infrastructure"
	catalogiface "frankies/internal/service/catalog/interfaces"

	orderapp "frankies/internal/service/order/application"
	orderport "frankies/internal/service/order/domain/port"
	orderinfra "frankies/internal/service/order/infrastructure"
	orderadapter "frankies/internal/service/order/infrastructure/adapter"
	orderiface "frankies/internal/service/order/interfaces"

	"frankies/internal/service/push"
)

const serviceName = "api-server"

// main is the composition root: every shared handle (DB pool, redis, kafka,
// zookeeper) is constructed once here, injected, and released on shutdown.
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(serviceName, cfg.Log.Level)

	tp, err := tracing.InitTracerProvider(serviceName, cfg.Jaeger.Endpoint)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to initialize tracer provider")
	}
	tracer := otel.Tracer(serviceName)

	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN()), &gorm.Config{})
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to connect to mysql")
	}
	if err := db.AutoMigrate(
		&orderinfra.OrderModel{},
		&cataloginfra.FoodMenuModel{},
		&cataloginfra.CategoryModel{},
		&accountinfra.UserModel{},
	); err != nil {
		logger.L().Fatal().Err(err).Msg("failed to migrate schema")
	}

	rdb, err := redisclient.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to connect to redis")
	}

	notificationWriter := mq.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic)

	var locker orderport.TransitionLocker = orderadapter.NoopTransitionLocker{}
	var zkMgr *zklock.Manager
	if len(cfg.Zookeeper.Servers) > 0 {
		zkMgr, err = zklock.NewManager(cfg.Zookeeper.Servers, 5*time.Second)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("failed to connect to zookeeper")
		}
		locker = orderadapter.NewZkTransitionLocker(zkMgr)
	} else {
		logger.L().Warn().Msg("no zookeeper configured, order transitions are not serialized")
	}

	// Order service.
	orderRepo := orderinfra.NewGormOrderRepository(db)
	notifier := orderadapter.NewNotificationKafkaAdapter(notificationWriter)
	orderService := orderapp.NewOrderService(orderRepo, locker, notifier, tracer)
	orderHandler := orderiface.NewOrderHandler(orderService)

	// Catalog service.
	catalogService := catalogapp.NewCatalogService(
		cataloginfra.NewGormMenuRepository(db),
		cataloginfra.NewGormCategoryRepository(db),
		tracer,
	)
	catalogHandler := catalogiface.NewCatalogHandler(catalogService)

	// Account service.
	userRepo := accountinfra.NewGormUserRepository(db)
	hasher := security.NewBcryptHasher(0)
	issuer := security.NewJWTIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinute)*time.Minute)
	otpStore := accountadapter.NewOTPRedisStore(rdb)
	otpSender := accountadapter.NewOTPKafkaAdapter(notificationWriter)
	accountService := accountapp.NewAccountService(userRepo, hasher, tracer)
	authService := accountapp.NewAuthService(
		userRepo,
		accountapp.NewPasswordFactor(hasher),
		accountapp.NewOTPFactor(otpStore),
		issuer,
		otpStore,
		otpSender,
		tracer,
	)
	accountHandler := accountiface.NewAccountHandler(accountService, authService)

	// WebSocket push, fed by the notifications topic.
	hub := push.NewHub()
	go hub.Run()
	fanout := push.NewFanout(
		mq.NewKafkaReader(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic, "push-fanout-group"),
		hub,
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws/orders", func(w http.ResponseWriter, req *http.Request) { push.ServeWS(hub, w, req) })
	orderHandler.RegisterRoutes(r)
	catalogHandler.RegisterRoutes(r)
	accountHandler.RegisterRoutes(r)

	err = bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Port:        cfg.Server.Port,
		Handler:     r,
		Workers:     []bootstrap.Worker{fanout},
		Cleanup: []func(ctx context.Context) error{
			func(ctx context.Context) error { return tp.Shutdown(ctx) },
			func(context.Context) error { return notificationWriter.Close() },
			func(context.Context) error { return rdb.Close() },
			func(context.Context) error { return fanout.Close() },
			func(context.Context) error {
				hub.Stop()
				if zkMgr != nil {
					zkMgr.Close()
				}
				return nil
			},
		},
	})
	if err != nil {
		logger.L().Fatal().Err(err).Msg("service exited with error")
	}
}
