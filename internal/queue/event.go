// Package queue defines message payloads exchanged over the message broker,
// the publisher that emits them and the background consumer that records
// them.
package queue

// PatternAlertEvent is published when a detector raises an alert.  It
// contains enough information for downstream consumers to log, notify or
// trigger execution without querying the screener.  Kind is either
// EARLY_WARNING or CONFIRMATION; the price fields that apply depend on it.
type PatternAlertEvent struct {
    Coin          string  `json:"coin"`
    Kind          string  `json:"kind"`
    PeakPrice     float64 `json:"peak_price,omitempty"`
    CurrentPrice  float64 `json:"current_price,omitempty"`
    NecklinePrice float64 `json:"neckline_price,omitempty"`
    BreakPrice    float64 `json:"break_price,omitempty"`
    DetectedAt    string  `json:"detected_at"`
}
