package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/perp-screener/internal/config"
	"github.com/iliyamo/perp-screener/internal/hyperliquid"
	"github.com/iliyamo/perp-screener/internal/model"
)

func TestBuildStartTime(t *testing.T) {
	var nowMS uint64 = 1_000_000
	var intervalMS uint64 = 60_000

	start := buildStartTime(nowMS, intervalMS, 5)
	assert.Equal(t, nowMS-intervalMS*5, start)
}

func TestBuildStartTimeClampsAtZero(t *testing.T) {
	start := buildStartTime(1_000, 60_000, 5000)
	assert.Equal(t, uint64(0), start)
}

func TestNormalizeCandlesSetsMissingFields(t *testing.T) {
	candles := []model.Candle{
		{OpenTime: 1, CloseTime: 2, Open: 1, High: 2, Low: 0.5, Close: 1.5},
		{OpenTime: 3, CloseTime: 4, Interval: "5m", Symbol: "ETH"},
	}

	normalizeCandles(candles, "BTC", "1m")

	assert.Equal(t, "1m", candles[0].Interval)
	assert.Equal(t, "BTC", candles[0].Symbol)
	// Already-set fields are left alone.
	assert.Equal(t, "5m", candles[1].Interval)
	assert.Equal(t, "ETH", candles[1].Symbol)
}

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "candleSnapshot", req["type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"t":1,"T":2,"o":"1.0","h":"2.0","l":"0.5","c":"1.5","v":"10","n":5}]`))
	}))
	defer srv.Close()

	client := hyperliquid.New()
	client.BaseURL = srv.URL
	svc := NewChartService(client, nil, config.CacheConfig{})

	snap, err := svc.FetchSnapshot(context.Background(), model.ChartQuery{Coin: "BTC", Interval: "1m", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "BTC", snap.Coin)
	assert.Equal(t, "1m", snap.Interval)
	assert.NotZero(t, snap.AsOfMS)
	require.Len(t, snap.Candles, 1)
	assert.Equal(t, "BTC", snap.Candles[0].Symbol)
	assert.Equal(t, "1m", snap.Candles[0].Interval)
	assert.Equal(t, 2.0, snap.Candles[0].High)
}

func TestFetchSnapshotPropagatesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := hyperliquid.New()
	client.BaseURL = srv.URL
	svc := NewChartService(client, nil, config.CacheConfig{})

	_, err := svc.FetchSnapshot(context.Background(), model.ChartQuery{Coin: "BTC", Interval: "1m", Limit: 10})
	assert.ErrorIs(t, err, hyperliquid.ErrUpstream)
}
