package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/api/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/config"
	"github.com/fekuna/omnipos-inventory-service/internal/events"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/migrations"
	"github.com/fekuna/omnipos-inventory-service/pkg/broker"
	"github.com/fekuna/omnipos-inventory-service/pkg/cache"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/migrate"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/fekuna/omnipos-inventory-service/pkg/middleware"
	"github.com/fekuna/omnipos-inventory-service/pkg/observability"
	"github.com/fekuna/omnipos-inventory-service/pkg/search"

	fulH "github.com/fekuna/omnipos-inventory-service/internal/fulfillment/handler"
	fulRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/fulfillment/repository"
	fulUCPkg "github.com/fekuna/omnipos-inventory-service/internal/fulfillment/usecase"

	invCachePkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/cache"
	invH "github.com/fekuna/omnipos-inventory-service/internal/inventory/handler"
	invJobPkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/job"
	invLedgerPkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/ledger"
	invListenerPkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/listener"
	invNotifierPkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/notifier"
	invRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/repository"
	invSearchPkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/search"
	invUCPkg "github.com/fekuna/omnipos-inventory-service/internal/inventory/usecase"

	trH "github.com/fekuna/omnipos-inventory-service/internal/transfer/handler"
	trRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/transfer/repository"
	trUCPkg "github.com/fekuna/omnipos-inventory-service/internal/transfer/usecase"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const serviceName = "omnipos-inventory-service"

var version = "dev"

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Tracing
	shutdownTracing, err := observability.SetupTracing(ctx, &observability.TracingConfig{
		ServiceName:    serviceName,
		ServiceVersion: version,
		Endpoint:       cfg.Tracing.Endpoint,
		URLPath:        cfg.Tracing.URLPath,
		Insecure:       cfg.Tracing.Insecure,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		appLogger.Warn("Tracing disabled", zap.Error(err))
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		_ = shutdownTracing(sctx)
	}()

	// 4. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if cfg.Server.AutoMigrate {
		m, err := migrate.New(db, migrations.FS)
		if err != nil {
			appLogger.Fatal("Could not init migrations", zap.Error(err))
		}
		if err := m.Up(); err != nil {
			appLogger.Fatal("Could not apply migrations", zap.Error(err))
		}
		appLogger.Info("Migrations applied")
	}

	clk := clock.New()
	txm := postgres.NewTxManager(db)

	// 5. Initialize Redis
	var stockCache inventory.StockCache
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis, stock reads go to the database", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		stockCache = invCachePkg.NewRedisStockCache(redisClient, time.Duration(cfg.Redis.StockTTL)*time.Second, appLogger)
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 6. Initialize Kafka Producer
	publisher := events.NewNopPublisher()
	if cfg.Kafka.EnablePublish {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		})
		defer producer.Close()
		publisher = events.NewKafkaPublisher(producer)
		appLogger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.EventsTopic))
	}

	// 7. Initialize Elasticsearch
	var movementIndexer inventory.MovementIndexer
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch, movements are not indexed", zap.Error(err))
	} else {
		idx := invSearchPkg.NewMovementIndexer(esClient, cfg.Elastic.MovementsIndex)
		if err := idx.EnsureIndex(ctx); err != nil {
			appLogger.Warn("Could not create movements index", zap.Error(err))
		}
		movementIndexer = idx
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 8. Initialize Repositories and UseCases
	invRepo := invRepoPkg.NewPGRepository(db)
	ledger := invLedgerPkg.NewLedger(invRepo, clk)
	notifier := invNotifierPkg.NewStockNotifier(stockCache, publisher, movementIndexer, clk, appLogger)

	invUC := invUCPkg.NewInventoryUseCase(invRepo, ledger, txm, stockCache, notifier, clk, appLogger)
	fulUC := fulUCPkg.NewFulfillmentUseCase(fulRepoPkg.NewPGRepository(db), ledger, txm, notifier, publisher, clk, appLogger)
	trUC := trUCPkg.NewTransferUseCase(trRepoPkg.NewPGRepository(db), ledger, txm, notifier, publisher, clk, appLogger)

	// 9. Catalog listener
	if cfg.Kafka.EnableListen {
		consumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.CatalogTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer consumer.Close()
		go invListenerPkg.NewCatalogListener(consumer, invUC, appLogger).Start(ctx)
		appLogger.Info("Catalog listener started", zap.String("topic", cfg.Kafka.CatalogTopic))
	}

	// 10. Reconciliation audit
	var locker invJobPkg.Locker
	if redisClient != nil {
		locker = redisClient
	}
	scheduler := cron.New()
	if _, err := invJobPkg.NewReconcileJob(invUC, locker, appLogger).Register(scheduler, cfg.Jobs.ReconcileSchedule); err != nil {
		appLogger.Fatal("Could not schedule reconcile job", zap.Error(err))
	}
	scheduler.Start()

	// 11. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
	)

	inventoryv1.RegisterInventoryServiceServer(grpcServer, invH.NewInventoryHandler(invUC, appLogger))
	inventoryv1.RegisterFulfillmentServiceServer(grpcServer, fulH.NewFulfillmentHandler(fulUC, appLogger))
	inventoryv1.RegisterTransferServiceServer(grpcServer, trH.NewTransferHandler(trUC, appLogger))
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	<-scheduler.Stop().Done()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
