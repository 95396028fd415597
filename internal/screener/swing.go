package screener

import "github.com/iliyamo/perp-screener/internal/model"

// trend direction tracked by the swing detector.
type trend int

const (
    trendNone trend = iota
    trendUp
    trendDown
)

// SwingPoint is a confirmed peak or trough.
type SwingPoint struct {
    Price  float64
    IsPeak bool
}

// SwingDetector identifies peaks and troughs in real time, without
// look-ahead: a swing is confirmed once price reverses against it by
// revATRMult times the current ATR.
type SwingDetector struct {
    revATRMult float64
    dir        trend
    swingHigh  float64
    swingLow   float64
}

// NewSwingDetector returns a detector that confirms reversals of at least
// revATRMult ATRs.
func NewSwingDetector(revATRMult float64) *SwingDetector {
    return &SwingDetector{revATRMult: revATRMult}
}

// Update feeds a candle and the current ATR into the detector.  It returns
// a confirmed swing point when a reversal occurred, nil otherwise.
func (s *SwingDetector) Update(c model.Candle, atr float64) *SwingPoint {
    rev := s.revATRMult * atr

    // First candle seeds the extremes and defaults to an up trend.
    if s.dir == trendNone {
        s.swingHigh = c.High
        s.swingLow = c.Low
        s.dir = trendUp
        return nil
    }

    switch s.dir {
    case trendUp:
        if c.High > s.swingHigh {
            s.swingHigh = c.High
        }
        if s.swingHigh-c.Low >= rev {
            peak := &SwingPoint{Price: s.swingHigh, IsPeak: true}
            s.dir = trendDown
            s.swingLow = c.Low
            return peak
        }
    case trendDown:
        if c.Low < s.swingLow {
            s.swingLow = c.Low
        }
        if c.High-s.swingLow >= rev {
            trough := &SwingPoint{Price: s.swingLow, IsPeak: false}
            s.dir = trendUp
            s.swingHigh = c.High
            return trough
        }
    }

    return nil
}
