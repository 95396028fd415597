package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/perp-screener/internal/service"
)

// Greet returns a greeting for the name in the request path.  The name is
// echoed verbatim: no trimming, casing or escaping is applied and any
// string succeeds.  Requests to /greet/ without a name do not reach this
// handler; the router answers them with its standard 404.
func Greet(c echo.Context) error {
    return c.JSON(http.StatusOK, service.GetGreeting(c.Param("name")))
}
