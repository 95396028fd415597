// Package screener implements double top detection over candle streams: an
// ATR calculator for volatility scaling, a swing detector for real-time
// peak/trough identification, the per-coin pattern state machine, the
// shared status state served over HTTP and the background monitor that
// drives it all.
package screener

import "github.com/iliyamo/perp-screener/internal/model"

// ATRCalculator computes a Wilder-smoothed Average True Range over a fixed
// period.  It needs period candles before it produces a value.
type ATRCalculator struct {
    period    int
    values    []float64
    prevClose float64
    hasPrev   bool
}

// NewATRCalculator returns a calculator over the given period.
func NewATRCalculator(period int) *ATRCalculator {
    return &ATRCalculator{
        period: period,
        values: make([]float64, 0, period),
    }
}

// trueRange computes the true range of a candle against the previous close.
func (a *ATRCalculator) trueRange(c model.Candle) float64 {
    hl := c.High - c.Low
    if !a.hasPrev {
        return hl
    }
    hpc := abs(c.High - a.prevClose)
    lpc := abs(c.Low - a.prevClose)
    return max3(hl, hpc, lpc)
}

// Update feeds a candle into the calculator and returns the current ATR.
// The second return value is false until the warmup period has elapsed.
func (a *ATRCalculator) Update(c model.Candle) (float64, bool) {
    tr := a.trueRange(c)
    a.prevClose = c.Close
    a.hasPrev = true

    if len(a.values) < a.period {
        a.values = append(a.values, tr)
        if len(a.values) == a.period {
            // Initial ATR is a simple average of the first period ranges.
            return mean(a.values), true
        }
        return 0, false
    }

    // Smoothed ATR: ((prev_atr * (period - 1)) + tr) / period
    prev := mean(a.values)
    atr := (prev*float64(a.period-1) + tr) / float64(a.period)
    a.values = append(a.values[1:], tr)
    return atr, true
}

func abs(v float64) float64 {
    if v < 0 {
        return -v
    }
    return v
}

func max3(a, b, c float64) float64 {
    m := a
    if b > m {
        m = b
    }
    if c > m {
        m = c
    }
    return m
}

func mean(vs []float64) float64 {
    var sum float64
    for _, v := range vs {
        sum += v
    }
    return sum / float64(len(vs))
}
