package schema

import "testing"

func TestNormalize_SkipsBlankTicker(t *testing.T) {
	t.Parallel()

	tbl := NewRawTable()
	tbl.AddColumn(ColTicker, []any{"AAPL", "", nil, "MSFT"})
	tbl.AddColumn(ColClose, []any{150.0, 1.0, 2.0, 410.0})
	tbl.AddColumn(ColRSI, []any{55.0, 1.0, 2.0, 62.0})

	rows := Normalize(KindLegacy, tbl)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Ticker != "AAPL" || rows[1].Ticker != "MSFT" {
		t.Fatalf("unexpected tickers: %s, %s", rows[0].Ticker, rows[1].Ticker)
	}
}

func TestNormalize_LegacyDefaultsComplete(t *testing.T) {
	t.Parallel()

	tbl := NewRawTable()
	tbl.AddColumn(ColTicker, []any{"AAPL"})
	tbl.AddColumn(ColClose, []any{150.0})
	tbl.AddColumn(ColRSI, []any{55.2})

	row := Normalize(KindLegacy, tbl)[0]

	if row.Name != "AAPL" {
		t.Fatalf("name = %q", row.Name)
	}
	if row.Decision != "-" {
		t.Fatalf("decision = %q", row.Decision)
	}
	if row.Score != 0 || row.Return5D != 0 {
		t.Fatalf("score/return5d not zero-defaulted: %v %v", row.Score, row.Return5D)
	}
	if row.ProbUp3D == nil || row.ProbUp5D == nil || row.ProbUp10D == nil {
		t.Fatalf("legacy probabilities must be filled")
	}
	if *row.ProbUp3D != 50 || *row.ProbUp5D != 50 || *row.ProbUp10D != 50 {
		t.Fatalf("legacy probabilities must default to exactly 50")
	}
	if row.MacroScore != nil {
		t.Fatalf("macro score must default to nil")
	}
	if row.MacroSignal != "" {
		t.Fatalf("macro signal must default to empty")
	}
}

func TestNormalize_ScoreAliasBeforeDefault(t *testing.T) {
	t.Parallel()

	// 점수 컬럼이 없고 최종점수 별칭만 있으면 0 기본값보다 별칭이 우선
	tbl := NewRawTable()
	tbl.AddColumn(ColTicker, []any{"AAPL"})
	tbl.AddColumn(ColClose, []any{150.0})
	tbl.AddColumn(ColRSI, []any{55.2})
	tbl.AddColumn("최종점수", []any{83.0})

	row := Normalize(KindLegacy, ResolveAliases(tbl))[0]
	if row.Score != 83.0 {
		t.Fatalf("score = %v, want alias value 83", row.Score)
	}
}

func TestNormalize_BlankDecisionGetsSentinel(t *testing.T) {
	t.Parallel()

	tbl := NewRawTable()
	tbl.AddColumn(ColTicker, []any{"AAPL", "MSFT"})
	tbl.AddColumn(ColClose, []any{150.0, 410.0})
	tbl.AddColumn(ColRSI, []any{55.0, 60.0})
	tbl.AddColumn(ColDecision, []any{"  ", "매수"})

	rows := Normalize(KindLegacy, tbl)
	if rows[0].Decision != "-" {
		t.Fatalf("blank decision = %q, want -", rows[0].Decision)
	}
	if rows[1].Decision != "매수" {
		t.Fatalf("decision = %q, want 매수", rows[1].Decision)
	}
}

func TestNormalize_OdinAIMalformedCellsAbsorbed(t *testing.T) {
	t.Parallel()

	tbl := NewRawTable()
	tbl.AddColumn(ColTicker, []any{"TSLA"})
	tbl.AddColumn(ColClose, []any{"220.5"})
	tbl.AddColumn(ColRSI, []any{"nan"})
	tbl.AddColumn(ColProb3D, []any{"70%"})
	tbl.AddColumn(ColProb5D, []any{""})
	tbl.AddColumn(ColProb10D, []any{"bad"})

	row := Normalize(KindOdinAI, tbl)[0]
	if row.Close != 220.5 {
		t.Fatalf("close = %v", row.Close)
	}
	if row.RSI != 0 {
		t.Fatalf("nan rsi must absorb to 0, got %v", row.RSI)
	}
	if *row.ProbUp3D != 70 {
		t.Fatalf("probUp3d = %v, want 70", *row.ProbUp3D)
	}
	// 셀 단위 오류는 중립값 50 으로 흡수
	if *row.ProbUp5D != 50 || *row.ProbUp10D != 50 {
		t.Fatalf("malformed probabilities must absorb to 50: %v %v", *row.ProbUp5D, *row.ProbUp10D)
	}
}

func TestNormalize_SummaryOptionalFieldsNilWhenBlank(t *testing.T) {
	t.Parallel()

	tbl := NewRawTable()
	tbl.AddColumn(ColTicker, []any{"NVDA"})
	tbl.AddColumn(ColSignalUSD, []any{890.0})
	tbl.AddColumn(ColRSI, []any{48.0})
	tbl.AddColumn(ColSignalKRW, []any{nil})
	tbl.AddColumn(ColConfidence, []any{""})

	row := Normalize(KindSummary, tbl)[0]
	if row.SignalKRW != nil {
		t.Fatalf("blank signal KRW must stay nil")
	}
	if row.Confidence != nil {
		t.Fatalf("blank confidence must stay nil")
	}
	if row.ProbUp3D != nil {
		t.Fatalf("summary probabilities must stay nil")
	}
}

func TestNormalize_MacroColumnsCopied(t *testing.T) {
	t.Parallel()

	tbl := NewRawTable()
	tbl.AddColumn(ColTicker, []any{"AAPL"})
	tbl.AddColumn(ColClose, []any{150.0})
	tbl.AddColumn(ColRSI, []any{55.0})
	tbl.AddColumn(ColMacroScore, []any{-1.5})
	tbl.AddColumn(ColMacroSignal, []any{"위험"})

	row := Normalize(KindLegacy, tbl)[0]
	if row.MacroScore == nil || *row.MacroScore != -1.5 {
		t.Fatalf("macro score = %v, want -1.5", row.MacroScore)
	}
	if row.MacroSignal != "위험" {
		t.Fatalf("macro signal = %q", row.MacroSignal)
	}
}
