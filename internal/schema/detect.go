package schema

import (
	"fmt"

	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/model"
)

// Workbook 로더 경계. 시트 열거와 원본 셀 읽기만 담당한다.
type Workbook interface {
	SheetNames() []string
	Table(sheet string) (*RawTable, error)
}

// schemaRule 필수 컬럼 집합 → 스키마 세대. 우선순위는 목록 순서.
// 새 세대는 코드 복사 없이 여기에 규칙을 추가한다.
type schemaRule struct {
	kind     SchemaKind
	required []string
}

// summaryRule SUMMARY 시트(이름 기준)에만 적용
var summaryRule = schemaRule{
	kind:     KindSummary,
	required: []string{ColTicker, ColSignalUSD, ColRSI},
}

// defaultSheetRules 기본 시트에 적용. 확률 컬럼이 두 세대를 가르는 판별 기준이다.
var defaultSheetRules = []schemaRule{
	{KindOdinAI, []string{ColTicker, ColClose, ColRSI, ColProb3D, ColProb5D, ColProb10D}},
	{KindLegacy, []string{ColTicker, ColClose, ColRSI}},
}

// Detection 워크북 1회 로드의 결과
type Detection struct {
	Kind   SchemaKind         `json:"schemaKind"`
	Sheet  string             `json:"sheet"`            // 분류에 사용한 시트
	Sheets []string           `json:"sheets"`           // 워크북의 전체 시트 목록
	Rows   []*model.SignalRow `json:"rows"`             // UNKNOWN 이면 nil
	Raw    *RawTable          `json:"-"`                // UNKNOWN 진단용 (정리된 원본)
}

// Detect 워크북의 스키마 세대를 판정하고 정규 행을 생성한다.
// 우선순위: SUMMARY 시트 → ODIN_AI → LEGACY → UNKNOWN.
// UNKNOWN 이면 정규 행 없이 정리된 원본 테이블만 돌려준다.
func Detect(wb Workbook) (*Detection, error) {
	sheets := wb.SheetNames()

	// 1) SUMMARY 시트가 있고 필수 컬럼을 갖추면 항상 우선한다
	if containsSheet(sheets, SummarySheetName) {
		t, err := prepare(wb, SummarySheetName)
		if err != nil {
			return nil, err
		}
		if t.HasAll(summaryRule.required...) {
			return &Detection{
				Kind:   KindSummary,
				Sheet:  SummarySheetName,
				Sheets: sheets,
				Rows:   Normalize(KindSummary, t),
			}, nil
		}
	}

	// 2) 첫 번째 비-SUMMARY 시트에 규칙표를 순서대로 적용
	sheet := firstDataSheet(sheets)
	if sheet == "" {
		return &Detection{Kind: KindUnknown, Sheets: sheets}, nil
	}

	t, err := prepare(wb, sheet)
	if err != nil {
		return nil, err
	}

	for _, rule := range defaultSheetRules {
		if t.HasAll(rule.required...) {
			return &Detection{
				Kind:   rule.kind,
				Sheet:  sheet,
				Sheets: sheets,
				Rows:   Normalize(rule.kind, t),
			}, nil
		}
	}

	// 3) 인식 실패: 원본을 진단용으로 노출하고 정규화는 중단
	return &Detection{
		Kind:   KindUnknown,
		Sheet:  sheet,
		Sheets: sheets,
		Raw:    t,
	}, nil
}

// prepare 로드 → 정리 → 별칭 해석
func prepare(wb Workbook, sheet string) (*RawTable, error) {
	t, err := wb.Table(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return ResolveAliases(SanitizeHeaders(t)), nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}

func firstDataSheet(sheets []string) string {
	for _, s := range sheets {
		if s != SummarySheetName {
			return s
		}
	}
	return ""
}
