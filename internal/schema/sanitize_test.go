package schema

import "testing"

func TestCleanHeader_InvisibleAndFullwidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"티커", "티커"},
		{"  티커  ", "티커"},
		{"​티커​", "티커"},
		{"\ufeff종가", "종가"},
		{"RSI ", "RSI"},
		{"⁠판단", "판단"},
		{"‎점수‏", "점수"},
		{"ＲＳＩ", "RSI"},
		{"３일확률", "3일확률"},
		{"ＴＰ（％）", "TP(%)"},
		{"\t종목명\n", "종목명"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := CleanHeader(tc.in); got != tc.want {
			t.Fatalf("CleanHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanHeader_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"​티커​",
		"\ufeff종가 ",
		"ＲＳＩ ",
		"３일상승확률（％）",
		"  판단⁠ ",
		"normal",
	}

	for _, in := range inputs {
		once := CleanHeader(in)
		twice := CleanHeader(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestCleanHeader_NonString(t *testing.T) {
	t.Parallel()

	if got := CleanHeader(nil); got != "" {
		t.Fatalf("nil header: got %q", got)
	}
	if got := CleanHeader(123); got != "123" {
		t.Fatalf("numeric header: got %q", got)
	}
}

func TestSanitizeHeaders_EquivalentTables(t *testing.T) {
	t.Parallel()

	// 비가시 문자/전각 차이만 있는 두 표는 정리 후 동일한 컬럼명을 가져야 한다
	a := NewRawTable()
	a.AddColumn("티커", []any{"AAPL"})
	a.AddColumn("ＲＳＩ", []any{55.0})

	b := NewRawTable()
	b.AddColumn("​티커\ufeff", []any{"AAPL"})
	b.AddColumn("RSI ", []any{55.0})

	ha := SanitizeHeaders(a).Headers()
	hb := SanitizeHeaders(b).Headers()

	if len(ha) != len(hb) {
		t.Fatalf("header count mismatch: %v vs %v", ha, hb)
	}
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("header %d mismatch: %q vs %q", i, ha[i], hb[i])
		}
	}
}
