package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/model"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/schema"
)

// ListSignals 마지막 업로드의 정규화 행 목록
// GET /api/signals
func (h *Handler) ListSignals(c *gin.Context) {
	d := h.detection()
	if d == nil || d.Kind == schema.KindUnknown {
		c.JSON(http.StatusNotFound, gin.H{"error": "업로드된 결과 파일이 없습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"schemaKind": d.Kind,
		"rows":       d.Rows,
	})
}

// GetSignal 단일 티커 조회
// GET /api/signals/:ticker
func (h *Handler) GetSignal(c *gin.Context) {
	row := h.findRow(c.Param("ticker"))
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "해당 티커가 없습니다"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// GuideLine 기준 가격 1줄 (USD + 환산 KRW)
type GuideLine struct {
	Label    string  `json:"label"`
	PriceUSD float64 `json:"priceUsd"`
	PriceKRW float64 `json:"priceKrw"`
}

// GuideResponse 기준 가격 요약표
type GuideResponse struct {
	Ticker   string      `json:"ticker"`
	FXRate   float64     `json:"fxRate"`
	FXSource string      `json:"fxSource"`
	Lines    []GuideLine `json:"lines"`
}

// GetGuide 선택 종목의 기준 가격 요약 (시그널가, SUMMARY 면 TP/SL 포함)
// GET /api/signals/:ticker/guide?fx=1385.2
func (h *Handler) GetGuide(c *gin.Context) {
	row := h.findRow(c.Param("ticker"))
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "해당 티커가 없습니다"})
		return
	}

	rate, source := h.fx.Rate()
	if v := c.Query("fx"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rate, source = f, "override"
		}
	}

	lines := []GuideLine{
		{Label: "시그널 가격", PriceUSD: row.Close, PriceKRW: row.Close * rate},
	}
	if row.TPPriceUSD != nil {
		lines = append(lines, GuideLine{Label: "TP 목표가", PriceUSD: *row.TPPriceUSD, PriceKRW: *row.TPPriceUSD * rate})
	}
	if row.SLPriceUSD != nil {
		lines = append(lines, GuideLine{Label: "SL 손절가", PriceUSD: *row.SLPriceUSD, PriceKRW: *row.SLPriceUSD * rate})
	}

	c.JSON(http.StatusOK, GuideResponse{
		Ticker:   row.Ticker,
		FXRate:   rate,
		FXSource: source,
		Lines:    lines,
	})
}

// findRow 마지막 업로드에서 티커로 행 찾기
func (h *Handler) findRow(ticker string) *model.SignalRow {
	d := h.detection()
	if d == nil {
		return nil
	}
	for _, row := range d.Rows {
		if row.Ticker == ticker {
			return row
		}
	}
	return nil
}
