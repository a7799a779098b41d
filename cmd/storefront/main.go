package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/alibix/storefront/internal/auth"
	cartcommand "github.com/alibix/storefront/internal/cart/usecase/command"
	cartquery "github.com/alibix/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	catalogcommand "github.com/alibix/storefront/internal/catalog/usecase/command"
	catalogquery "github.com/alibix/storefront/internal/catalog/usecase/query"
	"github.com/alibix/storefront/internal/history/mirror"
	historycommand "github.com/alibix/storefront/internal/history/usecase/command"
	historyquery "github.com/alibix/storefront/internal/history/usecase/query"
	orderdomain "github.com/alibix/storefront/internal/order/domain"
	ordercommand "github.com/alibix/storefront/internal/order/usecase/command"
	orderquery "github.com/alibix/storefront/internal/order/usecase/query"
	recdomain "github.com/alibix/storefront/internal/recommendation/domain"
	recquery "github.com/alibix/storefront/internal/recommendation/usecase/query"
	wishlistusecase "github.com/alibix/storefront/internal/wishlist/usecase"

	authhttp "github.com/alibix/storefront/internal/auth/delivery/http"
	carthttp "github.com/alibix/storefront/internal/cart/delivery/http"
	cataloghttp "github.com/alibix/storefront/internal/catalog/delivery/http"
	historyhttp "github.com/alibix/storefront/internal/history/delivery/http"
	orderhttp "github.com/alibix/storefront/internal/order/delivery/http"
	rechttp "github.com/alibix/storefront/internal/recommendation/delivery/http"
	wishlisthttp "github.com/alibix/storefront/internal/wishlist/delivery/http"

	cartrepository "github.com/alibix/storefront/internal/cart/repository"
	catalogrepository "github.com/alibix/storefront/internal/catalog/repository"
	historyrepository "github.com/alibix/storefront/internal/history/repository"
	orderrepository "github.com/alibix/storefront/internal/order/repository"
	wishlistrepository "github.com/alibix/storefront/internal/wishlist/repository"

	"github.com/alibix/storefront/kafka"
	"github.com/alibix/storefront/pkg/database"
	"github.com/alibix/storefront/pkg/kvstore"
	"github.com/alibix/storefront/pkg/logger"
	"github.com/alibix/storefront/pkg/tracing"
)

const serviceName = "alibix-storefront"

func main() {
	logger.Init(serviceName, getEnv("APP_ENV", "development") == "development")
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Key-value store: Redis when configured, in-memory otherwise
	store := newKVStore()

	// Catalog and order repositories: Postgres when configured, seeded
	// in-memory otherwise
	products, categories, orders := newRepositories()

	// Optional Kafka wiring
	var publisher *kafka.Publisher
	var viewPublisher mirror.ViewPublisher
	var orderPublisher ordercommand.OrderPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka publisher disabled")
		} else {
			defer publisher.Close()
			viewPublisher = publisher
			orderPublisher = publisher
		}

		consumer, err := kafka.NewConsumer(
			strings.Split(brokers, ","),
			getEnv("KAFKA_GROUP_ID", serviceName),
			[]string{kafka.TopicOrderPlaced},
		)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka consumer disabled")
		} else {
			defer consumer.Close()
			consumer.RegisterHandler(kafka.EventTypeOrderPlaced, kafka.NewOrderPlacedHandler(products))
			if err := consumer.Start(context.Background()); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
			}
		}
	}

	// History with its fire-and-forget sync mirror
	history := historyrepository.NewKVHistoryRepository(store)
	syncer := mirror.NewSyncer(store, viewPublisher)
	defer syncer.Stop()

	// Recommendation pipeline
	recConfig := recdomain.DefaultConfig()
	simulator := recdomain.NewSimulator(recConfig.AccuracyRate, rand.New(rand.NewSource(time.Now().UnixNano())))

	// Admin route guard
	jwtService := auth.NewJWTService(getEnv("JWT_SECRET", "alibix-dev-secret"), 24*time.Hour)
	admin := adminMiddleware(jwtService)

	router := mux.NewRouter()

	catalogHandler := cataloghttp.NewCatalogHandler(
		catalogcommand.NewCreateProductHandler(products),
		catalogcommand.NewUpdateProductHandler(products),
		catalogcommand.NewDeleteProductHandler(products),
		catalogcommand.NewUpdateStockHandler(products),
		catalogcommand.NewApplyDiscountHandler(products),
		catalogcommand.NewRemoveDiscountHandler(products),
		catalogcommand.NewSaveCategoryHandler(categories),
		catalogcommand.NewDeleteCategoryHandler(categories),
		catalogquery.NewGetProductHandler(products),
		catalogquery.NewListProductsHandler(products),
		catalogquery.NewSearchProductsHandler(products),
		catalogquery.NewGetRelatedHandler(products),
		catalogquery.NewInventoryReportHandler(products),
		catalogquery.NewListCategoriesHandler(categories),
		catalogquery.NewGetCategoryHandler(categories),
		admin,
	)
	catalogHandler.RegisterRoutes(router)

	historyHandler := historyhttp.NewHistoryHandler(
		historycommand.NewRecordViewHandler(products, history, syncer),
		historycommand.NewRemoveViewHandler(history, syncer),
		historycommand.NewClearViewsHandler(history, syncer),
		historycommand.NewRecordSearchHandler(history),
		historyquery.NewListViewsHandler(history),
		historyquery.NewListSearchesHandler(history),
		historyquery.NewViewStatsHandler(history),
	)
	historyHandler.RegisterRoutes(router)

	recHandler := rechttp.NewRecommendationHandler(
		recquery.NewPersonalizedHandler(products, history, recConfig, simulator),
		recquery.NewSimilarProductsHandler(products),
		recquery.NewCategoryRecommendationsHandler(products, history),
	)
	recHandler.RegisterRoutes(router)

	orderHandler := orderhttp.NewOrderHandler(
		ordercommand.NewCreateOrderHandler(orders, orderPublisher),
		ordercommand.NewUpdateStatusHandler(orders),
		ordercommand.NewDeleteOrderHandler(orders),
		orderquery.NewGetOrderHandler(orders),
		orderquery.NewListOrdersHandler(orders),
		orderquery.NewGetStatsHandler(orders),
		orderquery.NewResolvePromoHandler(),
		orderhttp.Middleware(admin),
	)
	orderHandler.RegisterRoutes(router)

	cartRepo := cartrepository.NewKVCartRepository(store)
	cartHandler := carthttp.NewCartHandler(
		cartcommand.NewAddItemHandler(products, cartRepo),
		cartcommand.NewUpdateQuantityHandler(cartRepo),
		cartcommand.NewRemoveItemHandler(cartRepo),
		cartcommand.NewClearCartHandler(cartRepo),
		cartquery.NewGetCartHandler(cartRepo),
	)
	cartHandler.RegisterRoutes(router)

	wishlistRepo := wishlistrepository.NewKVWishlistRepository(store)
	wishlistHandler := wishlisthttp.NewWishlistHandler(wishlistusecase.NewService(wishlistRepo, products))
	wishlistHandler.RegisterRoutes(router)

	authHandler := authhttp.NewAuthHandler(jwtService, adminCredentials())
	authHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      otelhttp.NewHandler(c.Handler(router), "storefront.http"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", port).Msg("Storefront HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// newKVStore connects to Redis when REDIS_ADDR is set and reachable,
// and falls back to the in-memory store otherwise
func newKVStore() kvstore.Store {
	addr := getEnv("REDIS_ADDR", "")
	if addr == "" {
		logger.Logger.Info().Msg("Using in-memory key-value store")
		return kvstore.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, using in-memory store")
		return kvstore.NewMemoryStore()
	}

	logger.Logger.Info().Str("addr", addr).Msg("Connected to Redis")
	return kvstore.NewRedisStore(client)
}

// newRepositories connects to Postgres when DB_HOST is set, and falls
// back to seeded in-memory repositories otherwise
func newRepositories() (catalogdomain.ProductRepository, catalogdomain.CategoryRepository, orderdomain.OrderRepository) {
	host := getEnv("DB_HOST", "")
	if host == "" {
		logger.Logger.Info().Msg("Using seeded in-memory repositories")
		return seededRepositories()
	}

	cfg := database.Config{
		Host:     host,
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefront"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(cfg)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Database unreachable, using seeded in-memory repositories")
		return seededRepositories()
	}

	products := catalogrepository.NewGormProductRepository(db)
	if err := products.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	orders := orderrepository.NewGormOrderRepository(db)
	if err := orders.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Str("host", host).Msg("Connected to Postgres")
	return catalogrepository.NewTracedProductRepository(products),
		catalogrepository.NewGormCategoryRepository(db),
		orders
}

func seededRepositories() (catalogdomain.ProductRepository, catalogdomain.CategoryRepository, orderdomain.OrderRepository) {
	return catalogrepository.NewSeededProductRepository(catalogrepository.SeedProducts()),
		catalogrepository.NewSeededCategoryRepository(catalogrepository.SeedCategories()),
		orderrepository.NewMemoryOrderRepository()
}

// adminCredentials reads the admin account from the environment. When no
// bcrypt hash is configured the development password is hashed at startup.
func adminCredentials() authhttp.Credentials {
	creds := authhttp.Credentials{
		Email:        getEnv("ADMIN_EMAIL", "admin@alibix.local"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
	if creds.PasswordHash == "" {
		hash, err := auth.HashPassword(getEnv("ADMIN_PASSWORD", "alibix-admin"))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to hash admin password")
		}
		creds.PasswordHash = hash
	}
	return creds
}

// adminMiddleware adapts the JWT auth chain to the handler middleware shape
func adminMiddleware(jwtService *auth.JWTService) cataloghttp.Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		guarded := jwtService.RequireAuth(auth.RequireAdmin(next))
		return func(w http.ResponseWriter, r *http.Request) {
			guarded.ServeHTTP(w, r)
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
