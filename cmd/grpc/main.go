package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/middleware"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/search"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	catalogv1 "github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"

	facetH "github.com/fekuna/omnipos-catalog-service/internal/facet/handler"
	facetRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/facet/repository"
	facetUCPkg "github.com/fekuna/omnipos-catalog-service/internal/facet/usecase"

	priceH "github.com/fekuna/omnipos-catalog-service/internal/pricing/handler"
	priceListenerPkg "github.com/fekuna/omnipos-catalog-service/internal/pricing/listener"
	priceRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/pricing/repository"
	priceUCPkg "github.com/fekuna/omnipos-catalog-service/internal/pricing/usecase"

	prodH "github.com/fekuna/omnipos-catalog-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-catalog-service/internal/product/usecase"

	taxRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/tax/repository"
	taxUCPkg "github.com/fekuna/omnipos-catalog-service/internal/tax/usecase"

	varH "github.com/fekuna/omnipos-catalog-service/internal/variant/handler"
	varRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/variant/repository"
	varUCPkg "github.com/fekuna/omnipos-catalog-service/internal/variant/usecase"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize i18n
	translator, err := i18n.New(cfg.Catalog.DefaultLanguageCode)
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}
	appLogger.Info("Loaded locales", zap.Strings("languages", translator.Languages()))

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

	// 5. Initialize Repositories
	taxRepo := taxRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	facetRepo := facetRepoPkg.NewPGRepository(db)
	priceRepo := priceRepoPkg.NewPGRepository(db)
	varRepo := varRepoPkg.NewPGRepository(db)

	// 6. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 7. Initialize Kafka
	priceConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.PricesTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer priceConsumer.Close()
	variantProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.VariantsTopic,
	})
	defer variantProducer.Close()
	appLogger.Info("Connected to Kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("prices_topic", cfg.Kafka.PricesTopic),
		zap.String("variants_topic", cfg.Kafka.VariantsTopic),
	)

	// 8. Initialize Elasticsearch
	var indexer varUCPkg.Indexer
	if cfg.Elastic.Enabled {
		esClient, err := search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch, variant search disabled", zap.Error(err))
		} else if err := esClient.CreateIndex(context.Background(), varUCPkg.SearchIndex, varUCPkg.SearchMapping); err != nil {
			appLogger.Warn("Could not create variant index, variant search disabled", zap.Error(err))
		} else {
			indexer = esClient
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 9. Initialize UseCases
	resolver := translatable.NewResolver(cfg.Catalog.DefaultLanguageCode)
	taxUC := taxUCPkg.NewTaxUseCase(taxRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, resolver, appLogger)
	facetUC := facetUCPkg.NewFacetUseCase(facetRepo, resolver, appLogger)
	priceUC := priceUCPkg.NewPricingUseCase(priceRepo, taxUC, redisClient, appLogger)
	varUC := varUCPkg.NewVariantUseCase(varUCPkg.Deps{
		Repo:      varRepo,
		Products:  prodRepo,
		Facets:    facetUC,
		Pricing:   priceUC,
		Tax:       taxUC,
		Cache:     redisClient,
		Search:    indexer,
		Publisher: variantProducer,
		Logger:    appLogger,
		Tracer:    otel.Tracer("catalog/variant"),
		Options: varUCPkg.Options{
			DefaultLanguageCode: cfg.Catalog.DefaultLanguageCode,
			DefaultChannelID:    cfg.Catalog.DefaultChannelID,
			GenerationLimit:     cfg.Catalog.VariantGenerationLimit,
			CacheTTL:            cfg.Catalog.CacheTTL,
		},
	})

	// 10. Start Listeners
	priceListener := priceListenerPkg.NewPriceListener(priceConsumer, priceUC, appLogger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go priceListener.Start(ctx)

	// 11. Initialize Handlers
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	varHandler := varH.NewVariantHandler(varUC, appLogger)
	facetHandler := facetH.NewFacetHandler(facetUC, appLogger)
	priceHandler := priceH.NewPricingHandler(priceUC, appLogger)

	// 12. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(middleware.Chain(appLogger, translator, requestctx.RequestContext{
			ChannelID:    cfg.Catalog.DefaultChannelID,
			LanguageCode: cfg.Catalog.DefaultLanguageCode,
		})...),
	)

	catalogv1.RegisterProductServiceServer(grpcServer, prodHandler)
	catalogv1.RegisterProductVariantServiceServer(grpcServer, varHandler)
	catalogv1.RegisterFacetServiceServer(grpcServer, facetHandler)
	catalogv1.RegisterPricingServiceServer(grpcServer, priceHandler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	for _, name := range []string{
		catalogv1.ProductServiceName,
		catalogv1.ProductVariantServiceName,
		catalogv1.FacetServiceName,
		catalogv1.PricingServiceName,
	} {
		healthServer.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
