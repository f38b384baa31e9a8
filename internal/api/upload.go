package api

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/schema"
)

// UploadResponse 업로드 + 정규화 결과
type UploadResponse struct {
	SchemaKind schema.SchemaKind `json:"schemaKind"`
	Sheet      string            `json:"sheet"`
	Sheets     []string          `json:"sheets"`
	RowCount   int               `json:"rowCount"`
	Rows       any               `json:"rows"`
	DurationMs int64             `json:"durationMs"`
}

// UnknownResponse 인식 실패 진단 응답
type UnknownResponse struct {
	SchemaKind schema.SchemaKind `json:"schemaKind"`
	Sheets     []string          `json:"sheets"`
	Headers    []string          `json:"headers"` // 정리된 컬럼명 미리보기
	Error      string            `json:"error"`
}

// Upload 결과 엑셀 업로드 처리
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	start := time.Now()

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드 파일이 없습니다"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": ".xlsx 파일만 지원합니다"})
		return
	}

	// 임시 저장 후 excelize 로 열기
	tempPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("odinspear_upload_%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일 저장 실패"})
		return
	}
	defer os.Remove(tempPath)

	wb, err := schema.OpenWorkbook(tempPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "엑셀 파일을 열 수 없습니다"})
		return
	}
	defer wb.Close()

	detection, err := schema.Detect(wb)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setDetection(detection)
	h.logUpload(file.Filename, detection)

	if detection.Kind == schema.KindUnknown {
		resp := UnknownResponse{
			SchemaKind: detection.Kind,
			Sheets:     detection.Sheets,
			Error:      "파일 구조를 자동 인식하지 못했습니다",
		}
		if detection.Raw != nil {
			resp.Headers = detection.Raw.Headers()
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		SchemaKind: detection.Kind,
		Sheet:      detection.Sheet,
		Sheets:     detection.Sheets,
		RowCount:   len(detection.Rows),
		Rows:       detection.Rows,
		DurationMs: time.Since(start).Milliseconds(),
	})
}

// logUpload 업로드 이력 기록. 실패해도 응답은 막지 않는다.
func (h *Handler) logUpload(filename string, d *schema.Detection) {
	if h.store == nil {
		return
	}
	if _, err := h.store.CreateUploadLog(filename, string(d.Kind), len(d.Sheets), len(d.Rows)); err != nil {
		log.Printf("업로드 이력 기록 실패: %v", err)
	}
}
