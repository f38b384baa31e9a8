package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/config"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/market"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/schema"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/store"
)

// Handler 대시보드 API 처리기
type Handler struct {
	store  *store.Store
	fx     *market.FXProvider
	market *market.Client
	cfg    *config.AppConfig

	// 마지막 업로드의 판정 결과. 화면 렌더링 동안만 유효하며 저장하지 않는다.
	mu   sync.RWMutex
	last *schema.Detection
}

// NewHandler API 처리기 생성
func NewHandler(s *store.Store, fx *market.FXProvider, mkt *market.Client, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:  s,
		fx:     fx,
		market: mkt,
		cfg:    cfg,
	}
}

// RegisterRoutes API 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 시스템 상태
	router.GET("/status", h.GetStatus)

	// 결과 파일 업로드 → 스키마 판정 + 정규화
	router.POST("/upload", h.Upload)

	// 정규화된 시그널 조회 (마지막 업로드 기준)
	router.GET("/signals", h.ListSignals)
	router.GET("/signals/:ticker", h.GetSignal)
	router.GET("/signals/:ticker/guide", h.GetGuide)

	// 시세 협력자
	router.GET("/fx", h.GetFX)
	router.GET("/history/:ticker", h.GetHistory)

	// 업로드 이력 (진단)
	router.GET("/uploads", h.ListUploads)
}

// setDetection 마지막 판정 결과 교체
func (h *Handler) setDetection(d *schema.Detection) {
	h.mu.Lock()
	h.last = d
	h.mu.Unlock()
}

// detection 마지막 판정 결과
func (h *Handler) detection() *schema.Detection {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}
