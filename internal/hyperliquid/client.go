// Package hyperliquid implements a minimal client for the Hyperliquid info
// endpoint.  Only candle snapshots are needed by the screener.
package hyperliquid

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/iliyamo/perp-screener/internal/model"
)

// DefaultBaseURL is the production info endpoint.
const DefaultBaseURL = "https://api.hyperliquid.xyz/info"

// ErrUpstream wraps every failure to reach or decode the exchange response.
// Handlers translate it into an HTTP 502.
var ErrUpstream = errors.New("hyperliquid upstream error")

// candleRequest is the wire format of a candleSnapshot request.
type candleRequest struct {
    Type string           `json:"type"`
    Req  candleRequestReq `json:"req"`
}

type candleRequestReq struct {
    Coin      string `json:"coin"`
    Interval  string `json:"interval"`
    StartTime uint64 `json:"startTime"`
    EndTime   uint64 `json:"endTime"`
}

// Client talks to the Hyperliquid info endpoint.  BaseURL may be pointed at
// a test server; HTTP may be replaced to control timeouts.
type Client struct {
    BaseURL string
    HTTP    *http.Client
}

// New returns a client against the production endpoint with a conservative
// request timeout.
func New() *Client {
    return &Client{
        BaseURL: DefaultBaseURL,
        HTTP:    &http.Client{Timeout: 15 * time.Second},
    }
}

// FetchCandles fetches candles for a coin within a time range (epoch ms).
func (c *Client) FetchCandles(ctx context.Context, coin, interval string, startTime, endTime uint64) ([]model.Candle, error) {
    body, err := json.Marshal(candleRequest{
        Type: "candleSnapshot",
        Req: candleRequestReq{
            Coin:      coin,
            Interval:  interval,
            StartTime: startTime,
            EndTime:   endTime,
        },
    })
    if err != nil {
        return nil, err
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
    if err != nil {
        return nil, err
    }
    req.Header.Set("Content-Type", "application/json")

    resp, err := c.HTTP.Do(req)
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
    }
    defer func() { _ = resp.Body.Close() }()

    if resp.StatusCode != http.StatusOK {
        // Drain a little of the body for a useful error message.
        msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
        return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, bytes.TrimSpace(msg))
    }

    var candles []model.Candle
    if err := json.NewDecoder(resp.Body).Decode(&candles); err != nil {
        return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
    }
    return candles, nil
}

// FetchWarmupCandles fetches the last n one-minute candles, used to seed a
// detector before live monitoring starts.
func (c *Client) FetchWarmupCandles(ctx context.Context, coin string, n int) ([]model.Candle, error) {
    now := uint64(time.Now().UnixMilli())
    const minuteMS = 60_000
    start := now - uint64(n)*minuteMS
    return c.FetchCandles(ctx, coin, "1m", start, now)
}
