package schema

import (
	"math"
	"strconv"
	"strings"
)

// Coerce 임의 셀 값을 float64 로 변환한다. 실패하면 def 를 돌려주며 절대 panic 하지 않는다.
// 문자열은 트림 후 천단위 콤마와 말미 % 기호를 제거하고 파싱한다.
// "nan"/"none"(대소문자 무관)과 빈 문자열은 결측으로 취급한다.
func Coerce(v any, def float64) float64 {
	switch x := v.(type) {
	case nil:
		return def
	case float64:
		if math.IsNaN(x) {
			return def
		}
		return x
	case float32:
		if math.IsNaN(float64(x)) {
			return def
		}
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case bool:
		return def
	case string:
		f, ok := parseNumber(x)
		if !ok {
			return def
		}
		return f
	default:
		return def
	}
}

// CoercePtr 값이 있으면 변환 결과의 포인터, 결측/변환 불가면 nil.
func CoercePtr(v any) *float64 {
	marker := math.Inf(-1)
	f := Coerce(v, marker)
	if f == marker {
		return nil
	}
	return &f
}

// parseNumber 문자열 숫자 파싱. "1,234.5%" → 1234.5
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "％", "%")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "none", "null":
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// CellString 셀 값을 트림된 문자열로. nil 은 빈 문자열.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	default:
		return strings.TrimSpace(strconvFormat(x))
	}
}

func strconvFormat(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}
