package service

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/perp-screener/internal/config"
    "github.com/iliyamo/perp-screener/internal/hyperliquid"
    "github.com/iliyamo/perp-screener/internal/model"
)

// ChartService assembles candle snapshots for the chart endpoints.  A nil
// Redis client disables caching; cache failures never fail a request, the
// service just falls through to the exchange.
type ChartService struct {
    Client   *hyperliquid.Client // upstream candle source
    Redis    *redis.Client       // optional snapshot cache
    CacheCfg config.CacheConfig  // cache toggle, TTL and key prefix
}

// NewChartService wires a chart service from its collaborators.
func NewChartService(client *hyperliquid.Client, rdb *redis.Client, cacheCfg config.CacheConfig) *ChartService {
    return &ChartService{Client: client, Redis: rdb, CacheCfg: cacheCfg}
}

// FetchSnapshot returns the last q.Limit candles for q.Coin at q.Interval.
// The query must already be validated.  Candles are normalized so interval
// and symbol are always set even when the upstream omits them.
func (s *ChartService) FetchSnapshot(ctx context.Context, q model.ChartQuery) (model.ChartSnapshot, error) {
    if snap, ok := s.cacheGet(ctx, q); ok {
        return snap, nil
    }

    nowMS := uint64(time.Now().UnixMilli())
    ivMS, ok := model.IntervalMS(q.Interval)
    if !ok {
        return model.ChartSnapshot{}, model.ErrUnsupportedInterval
    }

    start := buildStartTime(nowMS, ivMS, q.Limit)
    candles, err := s.Client.FetchCandles(ctx, q.Coin, q.Interval, start, nowMS)
    if err != nil {
        return model.ChartSnapshot{}, err
    }
    normalizeCandles(candles, q.Coin, q.Interval)

    snap := model.ChartSnapshot{
        AsOfMS:   nowMS,
        Coin:     q.Coin,
        Interval: q.Interval,
        Candles:  candles,
    }
    s.cacheSet(ctx, q, snap)
    return snap, nil
}

// buildStartTime computes the inclusive start of the requested range,
// clamping at zero so huge limits never underflow.
func buildStartTime(nowMS, intervalMS uint64, limit int) uint64 {
    span := intervalMS * uint64(limit)
    if span > nowMS {
        return 0
    }
    return nowMS - span
}

// normalizeCandles fills in interval and symbol on candles that arrived
// without them.
func normalizeCandles(candles []model.Candle, coin, interval string) {
    for i := range candles {
        if candles[i].Interval == "" {
            candles[i].Interval = interval
        }
        if candles[i].Symbol == "" {
            candles[i].Symbol = coin
        }
    }
}

func (s *ChartService) cacheKey(q model.ChartQuery) string {
    return fmt.Sprintf("%s:%s:%s:%d", s.CacheCfg.Prefix, q.Coin, q.Interval, q.Limit)
}

// cacheGet looks up a cached snapshot.  Any Redis or decode error counts as
// a miss.
func (s *ChartService) cacheGet(ctx context.Context, q model.ChartQuery) (model.ChartSnapshot, bool) {
    if s.Redis == nil || !s.CacheCfg.Enabled {
        return model.ChartSnapshot{}, false
    }
    raw, err := s.Redis.Get(ctx, s.cacheKey(q)).Bytes()
    if err != nil {
        return model.ChartSnapshot{}, false
    }
    var snap model.ChartSnapshot
    if err := json.Unmarshal(raw, &snap); err != nil {
        return model.ChartSnapshot{}, false
    }
    return snap, true
}

// cacheSet stores a snapshot best-effort; failures are logged and ignored.
func (s *ChartService) cacheSet(ctx context.Context, q model.ChartQuery, snap model.ChartSnapshot) {
    if s.Redis == nil || !s.CacheCfg.Enabled {
        return
    }
    raw, err := json.Marshal(snap)
    if err != nil {
        return
    }
    if err := s.Redis.Set(ctx, s.cacheKey(q), raw, s.CacheCfg.TTL).Err(); err != nil {
        log.Printf("chart cache: set failed: %v", err)
    }
}
