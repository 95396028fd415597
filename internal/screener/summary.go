package screener

import (
    "fmt"

    "github.com/iliyamo/perp-screener/internal/model"
)

// buildSummary renders a one-line human description of a coin's detection
// status for dashboards and logs.
func buildSummary(coin, state string, peak1, neckline *float64, warmedUp bool) string {
    if !warmedUp {
        return fmt.Sprintf("%s: warming up, collecting candles before detection.", coin)
    }

    switch state {
    case model.StateWatching:
        return fmt.Sprintf("%s: watching for the first peak.", coin)
    case model.StatePeakFound:
        if peak1 != nil {
            return fmt.Sprintf("%s: first peak found at $%.2f; waiting for pullback.", coin, *peak1)
        }
        return fmt.Sprintf("%s: first peak found; waiting for pullback.", coin)
    case model.StateTroughFound:
        switch {
        case peak1 != nil && neckline != nil:
            return fmt.Sprintf("%s: trough at $%.2f after peak at $%.2f; watching for second peak.",
                coin, *neckline, *peak1)
        case peak1 != nil:
            return fmt.Sprintf("%s: pullback detected after peak at $%.2f; watching for second peak.",
                coin, *peak1)
        default:
            return fmt.Sprintf("%s: pullback detected; watching for second peak.", coin)
        }
    case model.StateForming:
        if peak1 != nil {
            return fmt.Sprintf("%s: price is approaching the first peak near $%.2f (early warning).", coin, *peak1)
        }
        return fmt.Sprintf("%s: price is approaching the first peak (early warning).", coin)
    case model.StateConfirmed:
        if neckline != nil {
            return fmt.Sprintf("%s: double top confirmed; broke neckline near $%.2f.", coin, *neckline)
        }
        return fmt.Sprintf("%s: double top confirmed.", coin)
    case model.StateInvalidated:
        if peak1 != nil {
            return fmt.Sprintf("%s: pattern invalidated after peak at $%.2f; watching for new setup.", coin, *peak1)
        }
        return fmt.Sprintf("%s: pattern invalidated; watching for new setup.", coin)
    }
    return fmt.Sprintf("%s: %s", coin, state)
}
