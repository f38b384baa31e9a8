package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/schema"
)

// StatusResponse 시스템 상태 응답
type StatusResponse struct {
	Loaded     bool              `json:"loaded"`     // 업로드 로드 여부
	SchemaKind schema.SchemaKind `json:"schemaKind"` // 마지막 판정 세대
	RowCount   int               `json:"rowCount"`
	FXFallback float64           `json:"fxFallback"` // 설정된 폴백 환율
}

// GetStatus 시스템 상태
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		FXFallback: h.fx.Fallback(),
	}

	if d := h.detection(); d != nil {
		resp.Loaded = d.Kind != schema.KindUnknown
		resp.SchemaKind = d.Kind
		resp.RowCount = len(d.Rows)
	}

	c.JSON(http.StatusOK, resp)
}

// ListUploads 최근 업로드 이력
// GET /api/uploads
func (h *Handler) ListUploads(c *gin.Context) {
	logs, err := h.store.ListUploadLogs(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": logs})
}
