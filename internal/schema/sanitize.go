package schema

import (
	"fmt"
	"strings"
)

// invisibleRunes 컬럼명에서 제거할 비가시 문자 집합.
// 실제 업로드 파일에서 관측된 문자만 명시적으로 나열한다.
// (유니코드 카테고리 단위로 지우면 의미 있는 기호까지 사라질 수 있음)
var invisibleRunes = map[rune]struct{}{
	'\u200b': {}, // zero width space
	'\u200c': {}, // zero width non-joiner
	'\u200d': {}, // zero width joiner
	'\ufeff': {}, // BOM / zero width no-break space
	'\u00a0': {}, // no-break space
	'\u2060': {}, // word joiner
	'\u200e': {}, // left-to-right mark
	'\u200f': {}, // right-to-left mark
	'\u202a': {}, // LRE
	'\u202b': {}, // RLE
	'\u202c': {}, // PDF
	'\u202d': {}, // LRO
	'\u202e': {}, // RLO
}

// CleanHeader 컬럼명을 비교 가능한 표준형으로 정리한다.
// 순서: 공백 트림 → 비가시 문자 제거 → 전각 영문/기호를 반각으로 치환 → 재트림.
// 항상 성공하며 두 번 적용해도 결과가 같다.
func CleanHeader(name any) string {
	s, ok := name.(string)
	if !ok {
		if name == nil {
			return ""
		}
		s = fmt.Sprint(name)
	}

	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, drop := invisibleRunes[r]; drop {
			continue
		}
		// 전각 형태 (U+FF01~U+FF5E) → ASCII
		if r >= 0xFF01 && r <= 0xFF5E {
			r -= 0xFEE0
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

// SanitizeHeaders 모든 컬럼명을 CleanHeader 로 재작성한 새 테이블을 돌려준다.
// 정리 후 이름이 충돌하면 먼저 나온 컬럼을 유지한다.
func SanitizeHeaders(t *RawTable) *RawTable {
	out := NewRawTable()
	for _, h := range t.headers {
		clean := CleanHeader(h)
		if clean == "" || out.Has(clean) {
			continue
		}
		cells := make([]any, len(t.cols[h]))
		copy(cells, t.cols[h])
		out.AddColumn(clean, cells)
	}
	out.rowCnt = t.rowCnt
	return out
}
