package screener

import (
    "context"
    "log"
    "sort"
    "time"

    "github.com/iliyamo/perp-screener/internal/config"
    "github.com/iliyamo/perp-screener/internal/hyperliquid"
    "github.com/iliyamo/perp-screener/internal/model"
)

// Detection runs on one-minute candles regardless of what the chart
// endpoints serve.
const candleIntervalMS = 60_000

// Monitor drives double top detection for a set of coins.  It seeds each
// detector with historical candles, then polls the exchange on a fixed
// interval, feeds newly closed candles into the detectors and refreshes the
// shared pattern state.  Alerts are logged and handed to the publish
// callback, which may be nil.
type Monitor struct {
    client    *hyperliquid.Client
    detectors map[string]*Detector
    cfg       config.DetectorConfig
    interval  time.Duration
    lastClose map[string]uint64
    state     *PatternState
    publish   func(context.Context, Alert)
}

// NewMonitor builds a monitor with one detector per coin.
func NewMonitor(
    client *hyperliquid.Client,
    coins []string,
    cfg config.DetectorConfig,
    interval time.Duration,
    state *PatternState,
    publish func(context.Context, Alert),
) *Monitor {
    detectors := make(map[string]*Detector, len(coins))
    for _, coin := range coins {
        detectors[coin] = NewDetector(coin, cfg)
    }
    return &Monitor{
        client:    client,
        detectors: detectors,
        cfg:       cfg,
        interval:  interval,
        lastClose: make(map[string]uint64),
        state:     state,
        publish:   publish,
    }
}

// Warmup seeds every detector with historical one-minute candles.  A coin
// whose history cannot be fetched is logged and left to warm up live; the
// method itself only fails on context cancellation.
func (m *Monitor) Warmup(ctx context.Context) error {
    for coin, det := range m.detectors {
        if err := ctx.Err(); err != nil {
            return err
        }
        log.Printf("monitor: warming up detector for %s", coin)

        candles, err := m.client.FetchWarmupCandles(ctx, coin, m.cfg.WarmupCandles)
        if err != nil {
            log.Printf("monitor: failed to warm up %s: %v", coin, err)
            continue
        }

        now := uint64(time.Now().UnixMilli())
        processed := 0
        for _, c := range candles {
            // Only closed candles count.
            if c.CloseTime > now-candleIntervalMS {
                continue
            }
            if alert := det.ProcessCandle(c); alert != nil {
                m.handleAlert(ctx, alert)
            }
            m.lastClose[coin] = c.CloseTime
            processed++
        }

        log.Printf("monitor: warmed up %s with %d candles (state: %s)", coin, processed, det.State())
    }

    m.refreshState()
    return nil
}

// Run polls the exchange until the context is cancelled.  Each cycle
// processes every coin and then publishes a fresh snapshot to the shared
// state.
func (m *Monitor) Run(ctx context.Context) {
    ticker := time.NewTicker(m.interval)
    defer ticker.Stop()

    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
        }

        for coin := range m.detectors {
            if err := m.processCoin(ctx, coin); err != nil {
                log.Printf("monitor: error processing %s: %v", coin, err)
            }
        }

        m.refreshState()
    }
}

// processCoin fetches candles since the last seen close and feeds the new
// closed ones into the coin's detector.
func (m *Monitor) processCoin(ctx context.Context, coin string) error {
    now := uint64(time.Now().UnixMilli())

    start, ok := m.lastClose[coin]
    if !ok {
        start = now - candleIntervalMS*5
    }

    candles, err := m.client.FetchCandles(ctx, coin, "1m", start, now)
    if err != nil {
        return err
    }

    det := m.detectors[coin]
    lastSeen := m.lastClose[coin]
    for _, c := range candles {
        // Skip candles that are still open or already processed.
        if c.CloseTime > now-candleIntervalMS || c.CloseTime <= lastSeen {
            continue
        }
        if alert := det.ProcessCandle(c); alert != nil {
            m.handleAlert(ctx, alert)
        }
        m.lastClose[coin] = c.CloseTime
    }

    return nil
}

// refreshState rebuilds the per-coin statuses and publishes them to the
// shared state, sorted by coin for stable ordering.
func (m *Monitor) refreshState() {
    statuses := make([]model.CoinPatternStatus, 0, len(m.detectors))
    for coin, det := range m.detectors {
        statuses = append(statuses, model.CoinPatternStatus{
            Coin:          coin,
            State:         det.State(),
            Peak1Price:    det.Peak1Price(),
            NecklinePrice: det.NecklinePrice(),
            Peak2Price:    det.Peak2Price(),
            IsWarmedUp:    det.IsWarmedUp(),
            Summary: buildSummary(
                coin, det.State(), det.Peak1Price(), det.NecklinePrice(), det.IsWarmedUp()),
        })
    }
    sort.Slice(statuses, func(i, j int) bool { return statuses[i].Coin < statuses[j].Coin })

    m.state.Publish(model.PatternSnapshot{
        AsOfMS:   uint64(time.Now().UnixMilli()),
        Patterns: statuses,
    })
}

// handleAlert logs an alert and forwards it to the publisher when one is
// configured.
func (m *Monitor) handleAlert(ctx context.Context, alert *Alert) {
    switch alert.Kind {
    case AlertEarlyWarning:
        log.Printf("EARLY WARNING: potential double top forming on %s - price $%.2f approaching previous high of $%.2f",
            alert.Coin, alert.CurrentPrice, alert.PeakPrice)
    case AlertConfirmation:
        log.Printf("CONFIRMED: double top on %s - broke neckline at $%.2f (break: $%.2f)",
            alert.Coin, alert.NecklinePrice, alert.BreakPrice)
    }
    if m.publish != nil {
        m.publish(ctx, *alert)
    }
}
