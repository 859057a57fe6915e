package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"otg-stream-overlay/internal/cache"
	"otg-stream-overlay/internal/config"
	"otg-stream-overlay/internal/handler"
	"otg-stream-overlay/internal/job"
	"otg-stream-overlay/internal/provider"
	"otg-stream-overlay/internal/rarity"
	"otg-stream-overlay/internal/service"
	"otg-stream-overlay/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "otg-stream-overlay/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	startPollerFunc        = func(p *job.Poller, ctx context.Context) { go p.Start(ctx) }
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           OTG Stream Overlay API
// @version         1.0
// @description     Streaming overlay service: market metrics, marketplace sales, and pass-through proxies.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := initRedisFunc(ctx, cfg.RedisURL)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Providers
	cgProvider := provider.NewCoinGeckoProvider(tracer, cfg.CoinGeckoAPIKey)
	seaProvider := provider.NewOpenSeaProvider(tracer, cfg.OpenSeaAPIKey)
	metaProvider := provider.NewMetadataProvider(tracer)

	// Services
	var serviceRedis service.RedisClient
	var rarityRedis rarity.RedisClient
	if redisClient != nil {
		serviceRedis = redisClient
		rarityRedis = redisClient
	}
	resolver := rarity.NewResolver(tracer, metaProvider, rarityRedis)
	metricsService := service.NewMetricsService(tracer, cgProvider, serviceRedis, cfg.AssetID, cfg.LiveSparkPoints)
	salesService := service.NewSalesService(tracer, seaProvider, resolver,
		cfg.CollectionSlug, cfg.MaxFeedItems, 5*time.Second, cfg.AllTimeHigh)

	// Pollers (background goroutines, stopped by ctx cancel)
	startPollerFunc(job.NewPoller("metrics", tracer, metricsService, cfg.MetricsPollSecs), ctx)
	startPollerFunc(job.NewPoller("sales", tracer, salesService, cfg.SalesPollSecs), ctx)

	// Handlers and routes
	h := handler.New(tracer, metricsService, salesService, cgProvider, seaProvider,
		cfg.AssetID, cfg.CollectionSlug)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("otg-stream-overlay"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
