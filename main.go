package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hospitality/configs"
	"hospitality/middlewares"
	"hospitality/notify"
	"hospitality/routes"
	"hospitality/services"
	"hospitality/telemetry"
	"hospitality/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "hospitality-api"

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTelemetry := telemetry.Setup(serviceName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := configs.OpenDatabase(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer configs.CloseDatabase(db)

	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedAdmin(ctx, db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Event sinks
	hub := ws.NewNotificationHub(cfg.CORSOrigin)
	go hub.Run(ctx)
	sinks := services.Fanout{hub}

	if cfg.KafkaBroker != "" {
		kafkaPub := notify.NewKafkaPublisher(notify.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic))
		defer kafkaPub.Close()
		sinks = append(sinks, kafkaPub)
		log.Printf("kafka events enabled topic=%s", cfg.KafkaTopic)
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		bot, err := notify.NewTelegramBot(cfg.TelegramToken)
		if err != nil {
			log.Printf("telegram disabled: %v", err)
		} else {
			sinks = append(sinks, notify.NewTelegramAlerter(bot, cfg.TelegramChatID))
		}
	}

	deps := routes.Deps{DB: db, Config: cfg, Events: sinks, Hub: hub}

	if cfg.CloudinaryURL != "" {
		host, err := services.NewCloudinaryHost(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("cloudinary: %v", err)
		}
		deps.ImageHost = host
	} else {
		log.Println("CLOUDINARY_URL not set, image upload disabled")
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		deps.Limiter = middlewares.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	deps.Registry = registry

	// HTTP
	r := routes.NewRouter(deps)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server running at %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
