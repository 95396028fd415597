package screener

import (
    "sync"

    "github.com/iliyamo/perp-screener/internal/model"
)

// PatternState is the shared view of every coin's detection status.  The
// monitor replaces it after each cycle; HTTP handlers read it and stream
// subscribers receive each published snapshot.  Safe for concurrent use.
type PatternState struct {
    mu       sync.RWMutex
    patterns []model.CoinPatternStatus
    subs     map[chan model.PatternSnapshot]struct{}
}

// NewPatternState returns an empty state with no subscribers.
func NewPatternState() *PatternState {
    return &PatternState{subs: make(map[chan model.PatternSnapshot]struct{})}
}

// Patterns returns a copy of the current per-coin statuses.
func (s *PatternState) Patterns() []model.CoinPatternStatus {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.CoinPatternStatus, len(s.patterns))
    copy(out, s.patterns)
    return out
}

// Publish replaces the stored statuses and fans the snapshot out to every
// subscriber.  Slow subscribers miss snapshots instead of blocking the
// monitor.
func (s *PatternState) Publish(snap model.PatternSnapshot) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.patterns = snap.Patterns
    for ch := range s.subs {
        select {
        case ch <- snap:
        default:
        }
    }
}

// Subscribe registers a snapshot channel and returns it together with a
// cancel function.  The cancel function must be called when the subscriber
// is done; it closes the channel.
func (s *PatternState) Subscribe() (<-chan model.PatternSnapshot, func()) {
    ch := make(chan model.PatternSnapshot, 16)
    s.mu.Lock()
    s.subs[ch] = struct{}{}
    s.mu.Unlock()

    cancel := func() {
        s.mu.Lock()
        if _, ok := s.subs[ch]; ok {
            delete(s.subs, ch)
            close(ch)
        }
        s.mu.Unlock()
    }
    return ch, cancel
}
