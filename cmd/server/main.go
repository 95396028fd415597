package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/perp-screener/internal/config"
	"github.com/iliyamo/perp-screener/internal/handler"
	"github.com/iliyamo/perp-screener/internal/hyperliquid"
	"github.com/iliyamo/perp-screener/internal/queue"
	"github.com/iliyamo/perp-screener/internal/router"
	"github.com/iliyamo/perp-screener/internal/screener"
	"github.com/iliyamo/perp-screener/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env file; absence is fine

	cfg := config.Load()                       // application config with defaults
	detectorCfg := config.LoadDetectorConfig() // double top tuning knobs
	cacheCfg := config.LoadCacheConfig()       // candle cache settings

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	if rdb == nil {
		log.Printf("redis unavailable, candle caching disabled")
	}

	client := hyperliquid.New()                                // upstream candle source
	chartSvc := service.NewChartService(client, rdb, cacheCfg) // snapshot assembly + cache
	state := screener.NewPatternState()                        // shared detection status

	// Alerts raised by the monitor are published best-effort; a broker
	// outage never interrupts detection.
	publish := func(ctx context.Context, a screener.Alert) {
		_ = queue.PublishPatternAlert(ctx, queue.PatternAlertEvent{
			Coin:          a.Coin,
			Kind:          a.Kind,
			PeakPrice:     a.PeakPrice,
			CurrentPrice:  a.CurrentPrice,
			NecklinePrice: a.NecklinePrice,
			BreakPrice:    a.BreakPrice,
			DetectedAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}

	monitor := screener.NewMonitor(client, cfg.Coins, detectorCfg, cfg.MonitorInterval, state, publish)
	go func() {
		ctx := context.Background()
		log.Printf("starting double top detection warmup...")
		if err := monitor.Warmup(ctx); err != nil {
			log.Printf("warmup aborted: %v", err)
			return
		}
		log.Printf("double top detection active, monitoring every %s", cfg.MonitorInterval)
		monitor.Run(ctx)
	}()

	go queue.StartAlertConsumer() // records published alerts to logs/alerts.log

	e := echo.New()       // Create Echo instance
	e.Debug = cfg.Debug   // verbose errors when DEBUG=true
	e.HideBanner = true   // startup info is logged below instead

	router.RegisterRoutes(e) // health + greeting
	router.RegisterChart(e, &handler.ChartHandler{Svc: chartSvc})
	router.RegisterPattern(e, &handler.PatternHandler{State: state})

	addr := ":" + cfg.Port
	log.Printf("%s listening on %s (debug=%v)", cfg.AppName, addr, cfg.Debug)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
