package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwingDetectorConfirmsPeakOnReversal(t *testing.T) {
	detector := NewSwingDetector(1.0)
	atr := 2.0

	// First candle seeds the detector.
	assert.Nil(t, detector.Update(makeCandle(100.0, 98.0, 99.0), atr))

	// Rising price with a pullback large enough to confirm a peak at 102.
	sp := detector.Update(makeCandle(102.0, 99.0, 101.0), atr)
	require.NotNil(t, sp)
	assert.True(t, sp.IsPeak)
	assert.InDelta(t, 102.0, sp.Price, 0.01)

	// Now in a down trend; a rally off 99 confirms the trough.
	sp = detector.Update(makeCandle(105.0, 101.0, 104.0), atr)
	require.NotNil(t, sp)
	assert.False(t, sp.IsPeak)
	assert.InDelta(t, 99.0, sp.Price, 0.01)

	// Back in an up trend with the swing high at 105; a two-point drop
	// confirms it as the next peak.
	sp = detector.Update(makeCandle(104.0, 102.0, 102.5), atr)
	require.NotNil(t, sp)
	assert.True(t, sp.IsPeak)
	assert.InDelta(t, 105.0, sp.Price, 0.01)
}

func TestSwingDetectorTracksNewHighsWithoutReversal(t *testing.T) {
	detector := NewSwingDetector(1.0)
	atr := 5.0 // large reversal threshold: nothing below confirms

	assert.Nil(t, detector.Update(makeCandle(100.0, 99.0, 99.5), atr))
	assert.Nil(t, detector.Update(makeCandle(101.0, 100.0, 100.5), atr))
	assert.Nil(t, detector.Update(makeCandle(102.0, 101.0, 101.5), atr))
	// Drop of 3 is still under the 5.0 threshold.
	assert.Nil(t, detector.Update(makeCandle(101.0, 99.0, 99.5), atr))
}
