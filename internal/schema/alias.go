package schema

// aliasRule 정규 컬럼명과 역대 파일에서 쓰인 별칭 목록 (선호 순)
type aliasRule struct {
	canonical string
	aliases   []string
}

// aliasRules 별칭 해석 규칙표. 새 세대가 별칭을 추가하면 여기에 한 줄만 더한다.
// 규칙 순서가 곧 처리 순서이므로 결과는 컬럼 순서와 무관하게 결정적이다.
var aliasRules = []aliasRule{
	{ColTicker, []string{"Ticker", "ticker", "종목코드", "심볼"}},
	{ColName, []string{"종목", "이름", "Name"}},
	{ColClose, []string{"Close", "현재가", "종가(USD)"}},
	{ColRSI, []string{"rsi", "RSI(14)"}},
	{ColScore, []string{"최종점수", "총점", "Score"}},
	{ColDecision, []string{"신호", "매매신호", "Signal"}},
	{ColReturn5D, []string{"5일수익률", "수익률(5일)"}},
	{ColProb3D, []string{"3일상승확률(%)", "3일상승확률"}},
	{ColProb5D, []string{"5일상승확률(%)", "5일상승확률"}},
	{ColProb10D, []string{"10일상승확률(%)", "10일상승확률"}},
	{ColMacroScore, []string{"MACRO_SCORE", "매크로점수"}},
	{ColMacroSignal, []string{"MACRO_SIGNAL", "매크로신호"}},
	{ColSignalUSD, []string{"시그널가(USD)", "시그널가격"}},
	{ColGrade, []string{"Grade"}},
	{ColWinRate, []string{"승률"}},
	{ColAvgReturn, []string{"평균수익률"}},
	{ColConfidence, []string{"신뢰도"}},
}

// ResolveAliases 정규 컬럼명이 없는 경우 별칭 목록을 순서대로 탐색해
// 처음 발견한 별칭 컬럼을 정규 이름으로 복사한 새 테이블을 돌려준다.
// 원본 별칭 컬럼은 그대로 남는다. 이미 정규 이름이 있으면 건드리지 않는다.
func ResolveAliases(t *RawTable) *RawTable {
	out := t.clone()
	for _, rule := range aliasRules {
		if out.Has(rule.canonical) {
			continue
		}
		for _, alias := range rule.aliases {
			if !out.Has(alias) {
				continue
			}
			cells := make([]any, len(out.cols[alias]))
			copy(cells, out.cols[alias])
			out.AddColumn(rule.canonical, cells)
			break
		}
	}
	return out
}
