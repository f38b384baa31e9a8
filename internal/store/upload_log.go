package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UploadLog 업로드 1회의 진단 기록
type UploadLog struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	SchemaKind string    `json:"schemaKind"`
	SheetCount int       `json:"sheetCount"`
	RowCount   int       `json:"rowCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateUploadLog 업로드 기록 생성, id 반환
func (s *Store) CreateUploadLog(filename, schemaKind string, sheetCount, rowCount int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO upload_logs (id, filename, schema_kind, sheet_count, row_count)
		VALUES (?, ?, ?, ?, ?)
	`, id, filename, schemaKind, sheetCount, rowCount)
	if err != nil {
		return "", fmt.Errorf("create upload log: %w", err)
	}
	return id, nil
}

// ListUploadLogs 최근 업로드 기록 (최신순)
func (s *Store) ListUploadLogs(limit int) ([]*UploadLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, filename, schema_kind, sheet_count, row_count, created_at
		FROM upload_logs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list upload logs: %w", err)
	}
	defer rows.Close()

	var logs []*UploadLog
	for rows.Next() {
		log := &UploadLog{}
		if err := rows.Scan(&log.ID, &log.Filename, &log.SchemaKind,
			&log.SheetCount, &log.RowCount, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
