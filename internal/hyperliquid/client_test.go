package hyperliquid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCandles(t *testing.T) {
	var got candleRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"t":100,"T":159,"o":"100.0","h":"101.0","l":"99.0","c":"100.5","v":"12.5","n":7,"i":"1m","s":"BTC"},
			{"t":160,"T":219,"o":"100.5","h":"102.0","l":"100.0","c":"101.5","v":"8.25","n":3,"i":"1m","s":"BTC"}
		]`))
	}))
	defer srv.Close()

	c := New()
	c.BaseURL = srv.URL

	candles, err := c.FetchCandles(context.Background(), "BTC", "1m", 100, 220)
	require.NoError(t, err)

	assert.Equal(t, "candleSnapshot", got.Type)
	assert.Equal(t, "BTC", got.Req.Coin)
	assert.Equal(t, "1m", got.Req.Interval)
	assert.Equal(t, uint64(100), got.Req.StartTime)
	assert.Equal(t, uint64(220), got.Req.EndTime)

	require.Len(t, candles, 2)
	assert.Equal(t, 101.0, candles[0].High)
	assert.Equal(t, 101.5, candles[1].Close)
	assert.Equal(t, uint64(3), candles[1].NumTrades)
}

func TestFetchCandlesUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New()
	c.BaseURL = srv.URL

	_, err := c.FetchCandles(context.Background(), "BTC", "1m", 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "429")
}

func TestFetchCandlesConnectionError(t *testing.T) {
	c := New()
	c.BaseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := c.FetchCandles(context.Background(), "BTC", "1m", 0, 1)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestFetchCandlesBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	c := New()
	c.BaseURL = srv.URL

	_, err := c.FetchCandles(context.Background(), "BTC", "1m", 0, 1)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestFetchWarmupCandlesRequestsOneMinuteRange(t *testing.T) {
	var got candleRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New()
	c.BaseURL = srv.URL

	_, err := c.FetchWarmupCandles(context.Background(), "ETH", 200)
	require.NoError(t, err)

	assert.Equal(t, "ETH", got.Req.Coin)
	assert.Equal(t, "1m", got.Req.Interval)
	assert.Equal(t, uint64(200*60_000), got.Req.EndTime-got.Req.StartTime)
}
