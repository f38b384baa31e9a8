package schema

import (
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/model"
)

// 기본값 정책. 화면 표시가 이 값들에 의존하므로 임의로 바꾸면 안 된다.
const (
	defaultDecision = "-"  // 신호 결측 표시
	defaultProb     = 50.0 // "정보 없음" 확률 (0 신뢰 아님)
)

// Normalize 분류된 테이블을 정규 행 목록으로 변환한다.
// kind 는 UNKNOWN 이 아니어야 하며, 별칭 해석이 끝난 테이블을 전제로 한다.
// 티커가 빈 행은 건너뛴다.
func Normalize(kind SchemaKind, t *RawTable) []*model.SignalRow {
	var rows []*model.SignalRow

	closeCol := ColClose
	decisionCol := ColDecision
	if kind == KindSummary {
		// SUMMARY 는 시그널가격을 종가로, 등급을 판단으로 쓴다
		closeCol = ColSignalUSD
		decisionCol = ColGrade
	}

	for i := 0; i < t.RowCount(); i++ {
		ticker := CellString(t.Cell(ColTicker, i))
		if ticker == "" {
			continue
		}

		row := &model.SignalRow{
			Ticker:      ticker,
			Close:       Coerce(t.Cell(closeCol, i), 0),
			RSI:         Coerce(t.Cell(ColRSI, i), 0),
			Score:       Coerce(t.Cell(ColScore, i), 0),
			Return5D:    Coerce(t.Cell(ColReturn5D, i), 0),
			MacroScore:  CoercePtr(t.Cell(ColMacroScore, i)),
			MacroSignal: CellString(t.Cell(ColMacroSignal, i)),
		}

		row.Name = CellString(t.Cell(ColName, i))
		if row.Name == "" {
			row.Name = ticker
		}

		row.Decision = CellString(t.Cell(decisionCol, i))
		if row.Decision == "" && decisionCol != ColDecision {
			row.Decision = CellString(t.Cell(ColDecision, i))
		}
		if row.Decision == "" {
			row.Decision = defaultDecision
		}

		fillProbabilities(kind, t, i, row)

		if kind == KindSummary {
			fillSummaryFields(t, i, row)
		}

		rows = append(rows, row)
	}

	return rows
}

// fillProbabilities 세대별 상승확률 정책:
// ODIN_AI 는 원본 값, LEGACY 는 결측 컬럼을 50 으로 보충, SUMMARY 는 개념이 없어 nil 유지.
func fillProbabilities(kind SchemaKind, t *RawTable, i int, row *model.SignalRow) {
	if kind == KindSummary {
		return
	}
	row.ProbUp3D = probValue(t, ColProb3D, i)
	row.ProbUp5D = probValue(t, ColProb5D, i)
	row.ProbUp10D = probValue(t, ColProb10D, i)
}

func probValue(t *RawTable, col string, i int) *float64 {
	v := Coerce(t.Cell(col, i), defaultProb)
	return &v
}

// fillSummaryFields SUMMARY 전용 필드. 셀이 비어 있으면 nil 로 둔다.
func fillSummaryFields(t *RawTable, i int, row *model.SignalRow) {
	row.SignalKRW = CoercePtr(t.Cell(ColSignalKRW, i))
	row.DistFromLow = CoercePtr(t.Cell(ColDistFromLow, i))
	row.TPPct = CoercePtr(t.Cell(ColTPPct, i))
	row.SLPct = CoercePtr(t.Cell(ColSLPct, i))
	row.TPPriceUSD = CoercePtr(t.Cell(ColTPPriceUSD, i))
	row.SLPriceUSD = CoercePtr(t.Cell(ColSLPriceUSD, i))
	row.WinRate = CoercePtr(t.Cell(ColWinRate, i))
	row.AvgReturn = CoercePtr(t.Cell(ColAvgReturn, i))
	row.Confidence = CoercePtr(t.Cell(ColConfidence, i))
	row.HoldDays = int(Coerce(t.Cell(ColHold, i), 0))
}
