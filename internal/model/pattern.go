package model

// Pattern state values reported per coin.  They mirror the states of the
// detection state machine in internal/screener.
const (
    StateWatching    = "WATCHING"     // looking for the first peak
    StatePeakFound   = "PEAK_FOUND"   // first peak identified, watching for pullback
    StateTroughFound = "TROUGH_FOUND" // pullback complete, watching for second approach
    StateForming     = "FORMING"      // price approaching the first peak (early warning sent)
    StateConfirmed   = "CONFIRMED"    // breakdown below the neckline
    StateInvalidated = "INVALIDATED"  // pattern invalidated
)

// CoinPatternStatus describes where the detector for one coin currently is.
// Price fields are nil until the corresponding swing point has been seen.
type CoinPatternStatus struct {
    Coin          string   `json:"coin"`
    State         string   `json:"state"`
    Peak1Price    *float64 `json:"peak1_price"`
    NecklinePrice *float64 `json:"neckline_price"`
    Peak2Price    *float64 `json:"peak2_price"`
    IsWarmedUp    bool     `json:"is_warmed_up"`
    Summary       string   `json:"summary"`
}

// PatternSnapshot is a timestamped view of every coin's status, broadcast to
// stream subscribers after each monitor cycle.
type PatternSnapshot struct {
    AsOfMS   uint64              `json:"as_of_ms"`
    Patterns []CoinPatternStatus `json:"patterns"`
}
