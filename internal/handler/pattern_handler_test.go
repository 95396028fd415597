package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/perp-screener/internal/handler"
	"github.com/iliyamo/perp-screener/internal/model"
	"github.com/iliyamo/perp-screener/internal/router"
	"github.com/iliyamo/perp-screener/internal/screener"
)

func newPatternServer(state *screener.PatternState) *echo.Echo {
	e := echo.New()
	router.RegisterPattern(e, &handler.PatternHandler{State: state})
	return e
}

func seededState() *screener.PatternState {
	peak := 105.5
	state := screener.NewPatternState()
	state.Publish(model.PatternSnapshot{
		AsOfMS: 1700000000000,
		Patterns: []model.CoinPatternStatus{
			{Coin: "BTC", State: model.StatePeakFound, Peak1Price: &peak, IsWarmedUp: true, Summary: "BTC: first peak found at $105.50; waiting for pullback."},
			{Coin: "ETH", State: model.StateWatching, IsWarmedUp: true, Summary: "ETH: watching for the first peak."},
		},
	})
	return state
}

func TestGetDoubleTopStatus(t *testing.T) {
	e := newPatternServer(seededState())

	req := httptest.NewRequest(http.MethodGet, "/double-top", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Patterns []model.CoinPatternStatus `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Patterns, 2)
	assert.Equal(t, "BTC", body.Patterns[0].Coin)
	assert.Equal(t, model.StatePeakFound, body.Patterns[0].State)
	require.NotNil(t, body.Patterns[0].Peak1Price)
	assert.Equal(t, 105.5, *body.Patterns[0].Peak1Price)
	assert.Nil(t, body.Patterns[1].Peak1Price)
}

func TestGetDoubleTopStatusEmptyState(t *testing.T) {
	e := newPatternServer(screener.NewPatternState())

	req := httptest.NewRequest(http.MethodGet, "/double-top", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Before the first monitor cycle the list is empty, not null.
	assert.JSONEq(t, `{"patterns":[]}`, rec.Body.String())
}

func TestGetDoubleTopStreamEmitsCurrentSnapshot(t *testing.T) {
	e := newPatternServer(seededState())

	// A cancelled context ends the stream right after the initial event.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/double-top/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "event: snapshot")
	assert.Contains(t, rec.Body.String(), `"coin":"BTC"`)
}
