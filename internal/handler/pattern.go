package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/perp-screener/internal/model"
    "github.com/iliyamo/perp-screener/internal/screener"
)

// PatternHandler serves the double top detection status maintained by the
// background monitor.
type PatternHandler struct {
    State *screener.PatternState // shared state refreshed each monitor cycle
}

// GetDoubleTopStatus returns the current pattern status of every monitored
// coin, sorted by coin.
func (h *PatternHandler) GetDoubleTopStatus(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"patterns": h.State.Patterns()})
}

// GetDoubleTopStream streams pattern snapshots over SSE: the current state
// immediately, then one event per monitor cycle.
func (h *PatternHandler) GetDoubleTopStream(c echo.Context) error {
    ctx := c.Request().Context()

    snapshots, cancel := h.State.Subscribe()
    defer cancel()

    startSSE(c)

    initial := model.PatternSnapshot{
        AsOfMS:   uint64(time.Now().UnixMilli()),
        Patterns: h.State.Patterns(),
    }
    if err := writeSSEEvent(c, "snapshot", initial.AsOfMS, initial); err != nil {
        return nil
    }

    keepAlive := time.NewTicker(sseKeepAliveInterval)
    defer keepAlive.Stop()

    for {
        select {
        case <-ctx.Done():
            return nil
        case <-keepAlive.C:
            if err := writeSSEKeepAlive(c); err != nil {
                return nil
            }
        case snap, ok := <-snapshots:
            if !ok {
                return nil
            }
            if err := writeSSEEvent(c, "snapshot", snap.AsOfMS, snap); err != nil {
                return nil
            }
        }
    }
}
