package config

// This file defines the tuning parameters for double top detection.  Every
// knob can be overridden through an environment variable, but the defaults
// are the ones the screener has been calibrated with and are safe to run
// unmodified.

// Confirmation mode values for DetectorConfig.ConfirmationMode.
const (
    // ConfirmOnClose triggers only when a candle closes below the break
    // level (conservative).
    ConfirmOnClose = "close"
    // ConfirmOnLow triggers as soon as a wick trades below the break level
    // (aggressive).
    ConfirmOnLow = "low"
)

// DetectorConfig holds the parameters for the double top state machine.
type DetectorConfig struct {
    WarmupCandles     int     // historical candles to process before detection starts
    HistoryWindow     int     // rolling candle window size kept per coin
    MaxPeakDistance   int     // max candles between the two peaks
    PeakTolerance     float64 // max % difference between peak prices
    MinPullbackPct    float64 // min % drop from the first peak to count as a trough
    MinPatternHeight  float64 // min % from peaks to neckline
    ApproachThreshold float64 // % distance to peak one that raises an early warning
    ATRPeriod         int     // ATR window for volatility scaling
    RevATR            float64 // swing reversal size in ATR multiples
    BreakdownBuffer   float64 // buffer below the neckline in ATR units
    ConfirmationMode  string  // ConfirmOnClose or ConfirmOnLow
    PeakFailPct       float64 // % above peak one that invalidates the pattern
    TrendLookback     int     // candles checked for an uptrend before warning
}

// LoadDetectorConfig reads environment variables to build a DetectorConfig.
// Defaults are used when variables are not set or fail to parse.
func LoadDetectorConfig() DetectorConfig {
    cfg := DetectorConfig{
        WarmupCandles:     envInt("DT_WARMUP_CANDLES", 200),
        HistoryWindow:     envInt("DT_HISTORY_WINDOW", 300),
        MaxPeakDistance:   envInt("DT_MAX_PEAK_DISTANCE", 60),
        PeakTolerance:     envFloat("DT_PEAK_TOLERANCE", 1.5),
        MinPullbackPct:    envFloat("DT_MIN_PULLBACK_PCT", 2.0),
        MinPatternHeight:  envFloat("DT_MIN_PATTERN_HEIGHT", 2.0),
        ApproachThreshold: envFloat("DT_APPROACH_THRESHOLD", 1.0),
        ATRPeriod:         envInt("DT_ATR_PERIOD", 14),
        RevATR:            envFloat("DT_REV_ATR", 1.0),
        BreakdownBuffer:   envFloat("DT_BREAKDOWN_BUFFER", 0.3),
        ConfirmationMode:  envStr("DT_CONFIRMATION_MODE", ConfirmOnClose),
        PeakFailPct:       envFloat("DT_PEAK_FAIL_PCT", 1.5),
        TrendLookback:     envInt("DT_TREND_LOOKBACK", 3),
    }
    if cfg.ConfirmationMode != ConfirmOnLow {
        cfg.ConfirmationMode = ConfirmOnClose
    }
    return cfg
}
