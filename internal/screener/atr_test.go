package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/perp-screener/internal/model"
)

// makeCandle builds a candle with the open equal to the close; times are
// irrelevant for the indicator tests.
func makeCandle(high, low, close float64) model.Candle {
	return model.Candle{Open: close, High: high, Low: low, Close: close}
}

func TestATRWarmupAndInitialAverage(t *testing.T) {
	atr := NewATRCalculator(3)

	// First two candles only accumulate.
	_, ok := atr.Update(makeCandle(102.0, 98.0, 100.0)) // TR = 4
	assert.False(t, ok)
	_, ok = atr.Update(makeCandle(104.0, 99.0, 102.0)) // TR = 5
	assert.False(t, ok)

	// Third candle completes the period; initial ATR is a simple average.
	v, ok := atr.Update(makeCandle(103.0, 100.0, 101.0)) // TR = 3
	assert.True(t, ok)
	assert.InDelta(t, 4.0, v, 0.01) // (4 + 5 + 3) / 3
}

func TestATRSmoothing(t *testing.T) {
	atr := NewATRCalculator(3)
	atr.Update(makeCandle(102.0, 98.0, 100.0))
	atr.Update(makeCandle(104.0, 99.0, 102.0))
	atr.Update(makeCandle(103.0, 100.0, 101.0))

	// prev close 101, TR = max(3, 3, 0) = 3; smoothed = (4*2 + 3) / 3
	v, ok := atr.Update(makeCandle(104.0, 101.0, 103.0))
	assert.True(t, ok)
	assert.InDelta(t, (4.0*2+3.0)/3.0, v, 0.01)
}

func TestATRTrueRangeUsesPreviousClose(t *testing.T) {
	atr := NewATRCalculator(2)

	// First candle has no previous close: TR is just high-low.
	atr.Update(makeCandle(101.0, 100.0, 100.5))
	// Gap up: TR = high - prev close = 110 - 100.5.
	v, ok := atr.Update(makeCandle(110.0, 109.0, 109.5))
	assert.True(t, ok)
	assert.InDelta(t, (1.0+9.5)/2.0, v, 0.01)
}
