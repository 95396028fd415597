package model

import (
    "errors"
    "fmt"
    "strings"
)

// SupportedIntervals lists every candle interval the upstream exchange
// accepts, in ascending order.
var SupportedIntervals = []string{
    "1m", "3m", "5m", "15m", "30m", "1h", "2h", "4h", "8h", "12h", "1d", "3d", "1w", "1M",
}

// DefaultChartLimit is the number of candles returned when a chart request
// does not specify a limit.
const DefaultChartLimit = 200

// MaxChartLimit caps the number of candles a single chart request may ask for.
const MaxChartLimit = 5000

// MaxCoinLength caps the length of a coin symbol in chart requests.
const MaxCoinLength = 24

// IntervalMS returns the duration of a candle interval in milliseconds, or
// false for an unsupported interval.
func IntervalMS(interval string) (uint64, bool) {
    switch interval {
    case "1m":
        return 60_000, true
    case "3m":
        return 180_000, true
    case "5m":
        return 300_000, true
    case "15m":
        return 900_000, true
    case "30m":
        return 1_800_000, true
    case "1h":
        return 3_600_000, true
    case "2h":
        return 7_200_000, true
    case "4h":
        return 14_400_000, true
    case "8h":
        return 28_800_000, true
    case "12h":
        return 43_200_000, true
    case "1d":
        return 86_400_000, true
    case "3d":
        return 259_200_000, true
    case "1w":
        return 604_800_000, true
    case "1M":
        return 2_592_000_000, true
    }
    return 0, false
}

// ChartQuery carries the parameters of a chart snapshot or stream request.
type ChartQuery struct {
    Coin     string
    Interval string
    Limit    int
}

// ErrUnsupportedInterval is returned by Validate for intervals the upstream
// exchange does not understand.
var ErrUnsupportedInterval = fmt.Errorf(
    "interval must be one of: %s", strings.Join(SupportedIntervals, ", "))

// Validate checks the query bounds.  Coin must be 1 to 24 characters,
// interval must be supported and limit must stay within 1..5000.
func (q ChartQuery) Validate() error {
    if q.Coin == "" || len(q.Coin) > MaxCoinLength {
        return errors.New("coin must be between 1 and 24 characters")
    }
    if _, ok := IntervalMS(q.Interval); !ok {
        return ErrUnsupportedInterval
    }
    if q.Limit < 1 || q.Limit > MaxChartLimit {
        return fmt.Errorf("limit must be between 1 and %d", MaxChartLimit)
    }
    return nil
}

// ChartSnapshot is the payload returned by the chart endpoints: the candles
// for one coin and interval as of a single point in time.
type ChartSnapshot struct {
    AsOfMS   uint64   `json:"as_of_ms"`
    Coin     string   `json:"coin"`
    Interval string   `json:"interval"`
    Candles  []Candle `json:"candles"`
}
