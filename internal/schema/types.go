package schema

// SchemaKind 결과 파일의 스키마 세대
type SchemaKind string

const (
	KindSummary SchemaKind = "SUMMARY" // 백테스트 집계 시트 (USD/KRW 시그널가, TP/SL 포함)
	KindOdinAI  SchemaKind = "ODIN_AI" // 3/5/10일 상승확률까지 포함한 최신 세대
	KindLegacy  SchemaKind = "LEGACY"  // 티커/종가/RSI 최소 구성
	KindUnknown SchemaKind = "UNKNOWN" // 인식 실패
)

// 정규 컬럼명. 별칭 해석(alias.go) 이후 모든 처리는 이 이름만 사용한다.
const (
	ColTicker   = "티커"
	ColName     = "종목명"
	ColClose    = "종가"
	ColRSI      = "RSI"
	ColScore    = "점수"
	ColDecision = "판단"
	ColReturn5D = "5일수익률(%)"

	ColProb3D  = "3일확률"
	ColProb5D  = "5일확률"
	ColProb10D = "10일확률"

	ColMacroScore  = "MACRO점수"
	ColMacroSignal = "MACRO신호"

	// SUMMARY 세대 전용
	ColSignalUSD   = "시그널가격(USD)"
	ColSignalKRW   = "시그널가격(KRW)"
	ColDistFromLow = "저점대비(%)"
	ColGrade       = "등급"
	ColHold        = "HOLD"
	ColTPPct       = "TP(%)"
	ColSLPct       = "SL(%)"
	ColTPPriceUSD  = "TP목표가(USD)"
	ColSLPriceUSD  = "SL손절가(USD)"
	ColWinRate     = "승률(%)"
	ColAvgReturn   = "평균수익률(%)"
	ColConfidence  = "신뢰도(%)"
)

// SummarySheetName SUMMARY 시트는 이름으로 우선 식별한다
const SummarySheetName = "SUMMARY"
