package model

// SignalRow 정규화된 시그널 1행. 모든 필드는 정규화 이후 항상 채워져 있다.
// (결측은 문서화된 기본값으로 대체되며, 포인터 필드의 nil 은 "해당 세대에 없음"을 뜻한다)
type SignalRow struct {
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`     // 없으면 티커로 대체
	Close    float64 `json:"close"`    // USD 기준
	RSI      float64 `json:"rsi"`      // 0~100
	Score    float64 `json:"score"`    // 0~100 종합 점수, 기본 0
	Decision string  `json:"decision"` // 자유 텍스트 신호, 기본 "-"
	Return5D float64 `json:"return5d"` // 기본 0

	// 상승확률 (0~100). LEGACY 는 50 으로 채우고 SUMMARY 는 개념이 없어 nil.
	ProbUp3D  *float64 `json:"probUp3d"`
	ProbUp5D  *float64 `json:"probUp5d"`
	ProbUp10D *float64 `json:"probUp10d"`

	MacroScore  *float64 `json:"macroScore"`
	MacroSignal string   `json:"macroSignal"`

	// SUMMARY 세대 전용 (다른 세대에서는 nil / 0)
	SignalKRW   *float64 `json:"signalKrw,omitempty"`
	DistFromLow *float64 `json:"distFromLow,omitempty"`
	TPPct       *float64 `json:"tpPct,omitempty"`
	SLPct       *float64 `json:"slPct,omitempty"`
	TPPriceUSD  *float64 `json:"tpPriceUsd,omitempty"`
	SLPriceUSD  *float64 `json:"slPriceUsd,omitempty"`
	WinRate     *float64 `json:"winRate,omitempty"`
	AvgReturn   *float64 `json:"avgReturn,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
	HoldDays    int      `json:"holdDays,omitempty"`
}
