package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/alibix/storefront/pkg/logger"
	"github.com/alibix/storefront/pkg/tracing"
)

const (
	rateLimitMax    = 100
	rateLimitWindow = time.Minute
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "alibix-gateway")
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

	// Redis backs the rate limiter; without it requests pass unthrottled
	var redisClient *redis.Client
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, rate limiting disabled")
			redisClient = nil
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "AliBix Gateway",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "*"),
		AllowMethods:  "GET,POST,PUT,DELETE,PATCH,OPTIONS,HEAD",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-Id, X-Session-ID, traceparent, tracestate",
		ExposeHeaders: "X-Request-Id, X-RateLimit-Limit, X-RateLimit-Remaining",
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	if redisClient != nil {
		app.Use(rateLimiter(redisClient))
		logger.Logger.Info().Int("limit", rateLimitMax).Dur("window", rateLimitWindow).Msg("Rate limiting enabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	storefrontURL := getEnv("STOREFRONT_URL", "http://localhost:8080")
	app.All("/api/*", func(c *fiber.Ctx) error {
		return proxy.Do(c, storefrontURL+c.OriginalURL())
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return proxy.Do(c, storefrontURL+"/metrics")
	})

	go func() {
		addr := ":" + getEnv("GATEWAY_PORT", "8000")
		logger.Logger.Info().Str("addr", addr).Str("backend", storefrontURL).Msg("Gateway starting")
		if err := app.Listen(addr); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start gateway")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down gateway...")
	if err := app.Shutdown(); err != nil {
		logger.Logger.Error().Err(err).Msg("Gateway shutdown failed")
	}
}

// rateLimiter throttles per client IP using a fixed Redis window.
// Redis errors fail open.
func rateLimiter(redisClient *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "alibix_ratelimit:" + c.IP()

		count, err := redisClient.Incr(c.UserContext(), key).Result()
		if err != nil {
			logger.Logger.Error().Err(err).Str("ip", c.IP()).Msg("Rate limiter error")
			return c.Next()
		}
		if count == 1 {
			redisClient.Expire(c.UserContext(), key, rateLimitWindow)
		}

		remaining := rateLimitMax - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", rateLimitMax))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > rateLimitMax {
			logger.Logger.Warn().Str("ip", c.IP()).Msg("Rate limit exceeded")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests",
			})
		}
		return c.Next()
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
