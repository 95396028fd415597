// Package router defines how HTTP routes are registered for the API.  Every
// route is attached by an explicit registration call during startup; there
// is no dynamic discovery and no re-registration after the server starts.
package router

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/perp-screener/internal/handler" // import the handlers that implement the endpoints
)

// RegisterRoutes registers the dependency-free routes on the provided Echo
// instance: the health check and the greeting endpoint.
func RegisterRoutes(e *echo.Echo) {
    // Map GET /health to the Health handler.  This endpoint can be used by
    // load balancers or monitoring systems to verify that the service is up
    // and running.
    e.GET("/health", handler.Health)
    // Map GET /greet/:name to the greeting handler.  The :name parameter is
    // required; /greet/ without a name falls through to the router's 404.
    e.GET("/greet/:name", handler.Greet)
}

// RegisterChart registers the chart endpoints under /chart.  The snapshot
// endpoint returns one JSON payload, the stream endpoint keeps the
// connection open and re-emits the snapshot every candle interval.
func RegisterChart(e *echo.Echo, h *handler.ChartHandler) {
    g := e.Group("/chart")
    g.GET("", h.GetChartSnapshot)
    g.GET("/stream", h.GetChartStream)
}

// RegisterPattern registers the double top status endpoints under
// /double-top.  Both read the shared state maintained by the monitor.
func RegisterPattern(e *echo.Echo, h *handler.PatternHandler) {
    g := e.Group("/double-top")
    g.GET("", h.GetDoubleTopStatus)
    g.GET("/stream", h.GetDoubleTopStream)
}
