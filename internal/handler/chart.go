// Package handler exposes the HTTP handlers of the screener API: the
// health probe, the greeting endpoint, chart snapshots and double top
// pattern status, the latter two also as server-sent event streams.
package handler

import (
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/perp-screener/internal/hyperliquid"
    "github.com/iliyamo/perp-screener/internal/model"
    "github.com/iliyamo/perp-screener/internal/service"
)

// ChartHandler serves candle snapshots fetched through the chart service.
type ChartHandler struct {
    Svc *service.ChartService // assembles and caches snapshots
}

// parseChartQuery extracts coin, interval and limit from the request.  The
// limit defaults when absent and must parse as an integer when present.
func parseChartQuery(c echo.Context) (model.ChartQuery, error) {
    q := model.ChartQuery{
        Coin:     c.QueryParam("coin"),
        Interval: c.QueryParam("interval"),
        Limit:    model.DefaultChartLimit,
    }
    if raw := c.QueryParam("limit"); raw != "" {
        n, err := strconv.Atoi(raw)
        if err != nil {
            return q, errors.New("limit must be an integer")
        }
        q.Limit = n
    }
    return q, q.Validate()
}

// GetChartSnapshot returns the last N candles for a coin and interval as a
// single JSON snapshot.  Invalid queries produce 400, upstream failures 502.
func (h *ChartHandler) GetChartSnapshot(c echo.Context) error {
    q, err := parseChartQuery(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    snap, err := h.Svc.FetchSnapshot(c.Request().Context(), q)
    if err != nil {
        if errors.Is(err, hyperliquid.ErrUpstream) {
            return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, snap)
}

// GetChartStream streams chart snapshots over SSE.  The snapshot is
// re-fetched once per candle interval; a failed fetch after the stream has
// started ends it.
func (h *ChartHandler) GetChartStream(c echo.Context) error {
    q, err := parseChartQuery(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    ivMS, _ := model.IntervalMS(q.Interval)
    poll := time.Duration(ivMS) * time.Millisecond

    ctx := c.Request().Context()

    // Fetch the first snapshot before committing to a stream response so
    // early failures still produce a proper error status.
    snap, err := h.Svc.FetchSnapshot(ctx, q)
    if err != nil {
        if errors.Is(err, hyperliquid.ErrUpstream) {
            return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }

    startSSE(c)
    if err := writeSSEEvent(c, "snapshot", snap.AsOfMS, snap); err != nil {
        return nil
    }

    ticker := time.NewTicker(poll)
    defer ticker.Stop()
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
        case <-ticker.C:
            snap, err := h.Svc.FetchSnapshot(ctx, q)
            if err != nil {
                c.Logger().Errorf("chart snapshot error: %v", err)
                return nil
            }
            if err := writeSSEEvent(c, "snapshot", snap.AsOfMS, snap); err != nil {
                return nil
            }
        }
    }
}
