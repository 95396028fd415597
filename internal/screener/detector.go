package screener

import (
    "log"

    "github.com/iliyamo/perp-screener/internal/config"
    "github.com/iliyamo/perp-screener/internal/model"
)

// Alert kinds raised by a detector.
const (
    AlertEarlyWarning = "EARLY_WARNING" // price re-approaching the first peak
    AlertConfirmation = "CONFIRMATION"  // close below the neckline
)

// Alert is raised when a detector crosses an alerting transition.  Which
// price fields are meaningful depends on Kind: early warnings carry
// PeakPrice and CurrentPrice, confirmations carry NecklinePrice and
// BreakPrice.
type Alert struct {
    Kind          string
    Coin          string
    PeakPrice     float64
    CurrentPrice  float64
    NecklinePrice float64
    BreakPrice    float64
}

// peakInfo records a detected peak and when it happened.
type peakInfo struct {
    price     float64
    candleIdx int
}

// Detector runs double top detection for a single coin.  Feed it closed
// candles in order via ProcessCandle; it walks the states WATCHING →
// PEAK_FOUND → TROUGH_FOUND → FORMING → CONFIRMED/INVALIDATED and raises
// alerts on the FORMING and CONFIRMED transitions.  Not safe for
// concurrent use; the monitor owns one detector per coin.
type Detector struct {
    coin   string
    cfg    config.DetectorConfig
    state  string
    atr    *ATRCalculator
    swing  *SwingDetector
    window []model.Candle
    count  int

    peak1            *peakInfo
    troughLow        *float64
    peak2            *peakInfo
    earlyWarningSent bool
}

// NewDetector returns a detector for one coin.
func NewDetector(coin string, cfg config.DetectorConfig) *Detector {
    return &Detector{
        coin:  coin,
        cfg:   cfg,
        state: model.StateWatching,
        atr:   NewATRCalculator(cfg.ATRPeriod),
        swing: NewSwingDetector(cfg.RevATR),
    }
}

// ProcessCandle feeds one closed candle into the detector and returns an
// alert if the candle triggered one.
func (d *Detector) ProcessCandle(c model.Candle) *Alert {
    d.count++

    // Maintain the rolling window used for trend checks.
    d.window = append(d.window, c)
    if len(d.window) > d.cfg.HistoryWindow {
        d.window = d.window[1:]
    }

    atr, atrReady := d.atr.Update(c)

    // Don't act until warmup completes.
    if d.count < d.cfg.WarmupCandles {
        return nil
    }
    if !atrReady {
        return nil
    }

    if sp := d.swing.Update(c, atr); sp != nil {
        d.handleSwingPoint(sp)
    }

    return d.checkStateTransitions(c, atr)
}

func (d *Detector) handleSwingPoint(sp *SwingPoint) {
    switch d.state {
    case model.StateWatching:
        if sp.IsPeak {
            d.resetWithPeak(sp)
        }
    case model.StatePeakFound, model.StateTroughFound, model.StateForming:
        if !sp.IsPeak {
            // A trough deep enough to count as a pullback.
            if d.peak1 == nil {
                return
            }
            pullbackPct := (d.peak1.price - sp.Price) / d.peak1.price * 100.0
            if pullbackPct < d.cfg.MinPullbackPct {
                return
            }
            // Keep the lowest trough seen; the neckline follows it down.
            if d.troughLow == nil || sp.Price < *d.troughLow {
                v := sp.Price
                d.troughLow = &v
                if d.state == model.StatePeakFound {
                    d.state = model.StateTroughFound
                }
            }
        } else if d.state == model.StateTroughFound || d.state == model.StateForming {
            // A second peak close enough to the first.
            if d.peak1 != nil && d.peaksMatch(d.peak1.price, sp.Price) {
                d.peak2 = &peakInfo{price: sp.Price, candleIdx: d.count}
            }
        }
    case model.StateConfirmed, model.StateInvalidated:
        // A fresh peak starts the hunt over.
        if sp.IsPeak {
            d.resetWithPeak(sp)
        }
    }
}

func (d *Detector) checkStateTransitions(c model.Candle, atr float64) *Alert {
    if d.peak1 != nil {
        // Price blew through peak one: not a double top.
        failLevel := d.peak1.price * (1.0 + d.cfg.PeakFailPct/100.0)
        if c.High > failLevel {
            log.Printf("[%s] pattern invalidated: high %.4f exceeded fail level %.4f", d.coin, c.High, failLevel)
            d.state = model.StateInvalidated
            return nil
        }

        // Pattern took too long to complete.
        if d.count-d.peak1.candleIdx > d.cfg.MaxPeakDistance {
            d.state = model.StateInvalidated
            return nil
        }
    }

    // While waiting for the second peak, a new low drags the neckline down.
    if (d.state == model.StateTroughFound || d.state == model.StateForming) &&
        d.troughLow != nil && c.Low < *d.troughLow && d.peak2 == nil {
        v := c.Low
        d.troughLow = &v
    }

    switch d.state {
    case model.StateTroughFound:
        if !d.earlyWarningSent {
            if alert := d.checkEarlyWarning(c); alert != nil {
                d.state = model.StateForming
                d.earlyWarningSent = true
                return alert
            }
        }
    case model.StateForming:
        if alert := d.checkConfirmation(c, atr); alert != nil {
            d.state = model.StateConfirmed
            return alert
        }
    }

    return nil
}

func (d *Detector) checkEarlyWarning(c model.Candle) *Alert {
    if d.peak1 == nil || d.troughLow == nil {
        return nil
    }

    // Pattern must be tall enough to trade.
    heightPct := (d.peak1.price - *d.troughLow) / d.peak1.price * 100.0
    if heightPct < d.cfg.MinPatternHeight {
        return nil
    }

    // Price must be near peak one.
    distancePct := abs(d.peak1.price-c.Close) / d.peak1.price * 100.0
    if distancePct > d.cfg.ApproachThreshold {
        return nil
    }

    // The approach has to come from an uptrend.
    if len(d.window) > d.cfg.TrendLookback {
        prevClose := d.window[len(d.window)-d.cfg.TrendLookback-1].Close
        if c.Close <= prevClose {
            return nil
        }
    }

    // Still below the invalidation level.
    failLevel := d.peak1.price * (1.0 + d.cfg.PeakFailPct/100.0)
    if c.High > failLevel {
        return nil
    }

    log.Printf("[%s] early warning: close %.4f approaching peak %.4f", d.coin, c.Close, d.peak1.price)

    return &Alert{
        Kind:         AlertEarlyWarning,
        Coin:         d.coin,
        PeakPrice:    d.peak1.price,
        CurrentPrice: c.Close,
    }
}

func (d *Detector) checkConfirmation(c model.Candle, atr float64) *Alert {
    if d.peak1 == nil || d.troughLow == nil || d.peak2 == nil {
        return nil
    }

    if !d.peaksMatch(d.peak1.price, d.peak2.price) {
        return nil
    }

    heightPct := (d.peak1.price - *d.troughLow) / d.peak1.price * 100.0
    if heightPct < d.cfg.MinPatternHeight {
        return nil
    }

    breakLevel := *d.troughLow - d.cfg.BreakdownBuffer*atr

    trigger := c.Close
    if d.cfg.ConfirmationMode == config.ConfirmOnLow {
        trigger = c.Low
    }
    if trigger >= breakLevel {
        return nil
    }

    log.Printf("[%s] confirmed: broke neckline %.4f (break level %.4f, trigger %.4f)",
        d.coin, *d.troughLow, breakLevel, trigger)

    return &Alert{
        Kind:          AlertConfirmation,
        Coin:          d.coin,
        NecklinePrice: *d.troughLow,
        BreakPrice:    trigger,
    }
}

// peaksMatch reports whether two peak prices are within the configured
// tolerance of each other.
func (d *Detector) peaksMatch(p1, p2 float64) bool {
    avg := (p1 + p2) / 2.0
    diffPct := abs(p1-p2) / avg * 100.0
    return diffPct <= d.cfg.PeakTolerance
}

func (d *Detector) resetWithPeak(sp *SwingPoint) {
    d.peak1 = &peakInfo{price: sp.Price, candleIdx: d.count}
    d.state = model.StatePeakFound
    d.troughLow = nil
    d.peak2 = nil
    d.earlyWarningSent = false
}

// State returns the current pattern state string.
func (d *Detector) State() string {
    return d.state
}

// IsWarmedUp reports whether the detector has seen enough candles to act.
func (d *Detector) IsWarmedUp() bool {
    return d.count >= d.cfg.WarmupCandles
}

// Peak1Price returns the first peak price, or nil when none is tracked.
func (d *Detector) Peak1Price() *float64 {
    if d.peak1 == nil {
        return nil
    }
    v := d.peak1.price
    return &v
}

// NecklinePrice returns the trough (neckline) price, or nil.
func (d *Detector) NecklinePrice() *float64 {
    if d.troughLow == nil {
        return nil
    }
    v := *d.troughLow
    return &v
}

// Peak2Price returns the second peak price, or nil.
func (d *Detector) Peak2Price() *float64 {
    if d.peak2 == nil {
        return nil
    }
    v := d.peak2.price
    return &v
}
