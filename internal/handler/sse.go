package handler

import (
    "encoding/json"
    "fmt"
    "time"

    "github.com/labstack/echo/v4"
)

// How often stream handlers emit a comment line to keep idle connections
// from being reaped by proxies.
const sseKeepAliveInterval = 15 * time.Second

// startSSE sets the response headers that mark the connection as a
// server-sent event stream.
func startSSE(c echo.Context) {
    h := c.Response().Header()
    h.Set(echo.HeaderContentType, "text/event-stream")
    h.Set("Cache-Control", "no-cache")
    h.Set("Connection", "keep-alive")
    c.Response().WriteHeader(200)
    c.Response().Flush()
}

// writeSSEEvent writes one named event with a JSON payload and flushes it
// to the client.
func writeSSEEvent(c echo.Context, event string, id uint64, payload any) error {
    data, err := json.Marshal(payload)
    if err != nil {
        return err
    }
    if _, err := fmt.Fprintf(c.Response(), "event: %s\nid: %d\ndata: %s\n\n", event, id, data); err != nil {
        return err
    }
    c.Response().Flush()
    return nil
}

// writeSSEKeepAlive writes a comment line that clients ignore.
func writeSSEKeepAlive(c echo.Context) error {
    if _, err := fmt.Fprint(c.Response(), ": keep-alive\n\n"); err != nil {
        return err
    }
    c.Response().Flush()
    return nil
}
