package schema

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelWorkbook excelize 파일을 Workbook 경계에 맞춘 어댑터
type ExcelWorkbook struct {
	f *excelize.File
}

// OpenWorkbook 경로에서 워크북 열기
func OpenWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &ExcelWorkbook{f: f}, nil
}

// NewExcelWorkbook 이미 열린 excelize 파일 래핑 (테스트용)
func NewExcelWorkbook(f *excelize.File) *ExcelWorkbook {
	return &ExcelWorkbook{f: f}
}

// SheetNames 시트 목록
func (w *ExcelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Table 첫 행을 컬럼명으로 하는 RawTable 구성.
// excelize 는 뒤쪽 빈 셀을 잘라내므로 짧은 행의 누락 셀은 nil 이 된다.
func (w *ExcelWorkbook) Table(sheet string) (*RawTable, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return NewRawTable(), nil
	}

	headers := rows[0]
	data := rows[1:]

	t := NewRawTable()
	for colIdx, header := range headers {
		if header == "" || t.Has(header) {
			continue // 이름 없는/중복 컬럼은 먼저 나온 것만 유지
		}
		cells := make([]any, len(data))
		for rowIdx, row := range data {
			if colIdx < len(row) && row[colIdx] != "" {
				cells[rowIdx] = row[colIdx]
			}
		}
		t.AddColumn(header, cells)
	}
	return t, nil
}

// Close 파일 닫기
func (w *ExcelWorkbook) Close() error {
	return w.f.Close()
}
