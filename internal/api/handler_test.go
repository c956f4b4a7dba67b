package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sl-calculator/internal/charges"
	"sl-calculator/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	return NewRouter(charges.New(charges.DefaultRates()))
}

func postJSON(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stoploss", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStopLoss_Buy(t *testing.T) {
	w := postJSON(t, newTestRouter(), `{"entry_price":"100","quantity":"10","max_loss":"50","direction":"buy"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got types.ChargeReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, types.ChargeReport{
		Direction:                "BUY",
		StopLossPrice:            "95.00",
		Turnover:                 "1950.00",
		Brokerage:                "0.59",
		SecuritiesTransactionTax: "0.00",
		TransactionCharges:       "0.06",
		GoodsAndServicesTax:      "0.12",
		StampDuty:                "0.03",
		RegulatoryFee:            "0.00",
		Total:                    "0.80",
	}, got)
}

func TestStopLoss_SellForm(t *testing.T) {
	form := url.Values{
		"entry_price": {"100"},
		"quantity":    {"10"},
		"max_loss":    {"50"},
		"direction":   {"SELL"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stoploss", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got types.ChargeReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "105.00", got.StopLossPrice)
	assert.Equal(t, "0.26", got.SecuritiesTransactionTax)
	assert.Equal(t, "0.00", got.StampDuty)
	assert.Equal(t, "1.07", got.Total)
}

func TestStopLoss_NumericJSON(t *testing.T) {
	w := postJSON(t, newTestRouter(), `{"entry_price":100,"quantity":10,"max_loss":50.0,"direction":"sell"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got types.ChargeReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "105.00", got.StopLossPrice)
	assert.Equal(t, "1.07", got.Total)
}

func TestStopLoss_NumericJSONStillValidated(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"fractional quantity", `{"entry_price":100,"quantity":2.5,"max_loss":50}`, "quantity"},
		{"null entry", `{"entry_price":null,"quantity":10,"max_loss":50}`, "entry_price"},
		{"negative loss", `{"entry_price":100,"quantity":10,"max_loss":-5}`, "max_loss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, newTestRouter(), tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var got errorResp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.field, got.Field)
		})
	}

	w := postJSON(t, newTestRouter(), `{"entry_price":true,"quantity":10,"max_loss":50}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStopLoss_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing entry", `{"quantity":"10","max_loss":"50"}`, "entry_price"},
		{"zero quantity", `{"entry_price":"100","quantity":"0","max_loss":"50"}`, "quantity"},
		{"bad direction", `{"entry_price":"100","quantity":"10","max_loss":"50","direction":"hold"}`, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, newTestRouter(), tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var got errorResp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.field, got.Field)
			assert.NotEmpty(t, got.Error)
		})
	}
}

func TestStopLoss_MalformedBody(t *testing.T) {
	w := postJSON(t, newTestRouter(), `{"entry_price":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type failingCalculator struct{}

func (failingCalculator) Calculate(context.Context, types.TradeInput) (*types.ChargeBreakdown, error) {
	return nil, errors.New("unexpected")
}

func TestStopLoss_InternalError(t *testing.T) {
	w := postJSON(t, NewRouter(failingCalculator{}), `{"entry_price":"100","quantity":"10","max_loss":"50"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "unexpected")
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
