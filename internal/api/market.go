package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FXResponse 환율 응답
type FXResponse struct {
	Rate   float64 `json:"rate"`   // USD/KRW
	Source string  `json:"source"` // live / cache / fallback
}

// GetFX 현재 USD/KRW 환율
// GET /api/fx
func (h *Handler) GetFX(c *gin.Context) {
	rate, source := h.fx.Rate()
	c.JSON(http.StatusOK, FXResponse{Rate: rate, Source: source})
}

// GetHistory 차트용 가격 시계열 (기본 5일 5분봉)
// GET /api/history/:ticker
func (h *Handler) GetHistory(c *gin.Context) {
	ticker := c.Param("ticker")

	rng := c.DefaultQuery("range", h.cfg.Market.ChartRange)
	interval := c.DefaultQuery("interval", h.cfg.Market.ChartInterval)

	points, err := h.market.History(ticker, rng, interval)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "가격 데이터를 불러오지 못했습니다", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ticker":   ticker,
		"range":    rng,
		"interval": interval,
		"points":   points,
	})
}
