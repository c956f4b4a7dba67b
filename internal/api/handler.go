// Package api exposes the calculator over HTTP as a single JSON call.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sl-calculator/internal/charges"
	"sl-calculator/internal/interfaces"
	"sl-calculator/internal/logger"
)

type Handler struct {
	calc interfaces.Calculator
}

func NewHandler(calc interfaces.Calculator) *Handler {
	return &Handler{calc: calc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/stoploss", h.StopLoss)
}

// StopLossReq mirrors the calculator form. JSON clients may send each
// numeric field as a number or as the raw string the user typed.
type StopLossReq struct {
	EntryPrice formValue `json:"entry_price" form:"entry_price"`
	Quantity   formValue `json:"quantity" form:"quantity"`
	MaxLoss    formValue `json:"max_loss" form:"max_loss"`
	Direction  string    `json:"direction" form:"direction"`
}

// formValue keeps the text of a JSON string or number. Parsing is left to
// charges.ParseInput so blank and malformed values report their field.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a number or string, got %s", b)
	}
	*v = formValue(n.String())
	return nil
}

type errorResp struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) StopLoss(c *gin.Context) {
	var req StopLossReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()

	in, err := charges.ParseInput(string(req.EntryPrice), string(req.Quantity), string(req.MaxLoss), req.Direction)
	if err != nil {
		writeError(c, err)
		return
	}

	b, err := h.calc.Calculate(ctx, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, charges.Report(in.Direction, *b))
}

func writeError(c *gin.Context, err error) {
	var ve *charges.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error(), Field: ve.Field})
		return
	}
	logger.ErrorWithErr(c.Request.Context(), "Calculation failed", err)
	c.JSON(http.StatusInternalServerError, errorResp{Error: "internal error"})
}
