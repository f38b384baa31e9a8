package schema

// RawTable 시트에서 읽은 원본 표 데이터.
// 컬럼 순서를 유지하며, 셀 값은 문자열/숫자/nil 이 섞여 있을 수 있다.
type RawTable struct {
	headers []string
	cols    map[string][]any
	rowCnt  int
}

// NewRawTable 빈 테이블 생성
func NewRawTable() *RawTable {
	return &RawTable{cols: make(map[string][]any)}
}

// AddColumn 컬럼 추가. 동일 이름이 이미 있으면 값만 교체한다.
func (t *RawTable) AddColumn(name string, cells []any) {
	if _, ok := t.cols[name]; !ok {
		t.headers = append(t.headers, name)
	}
	t.cols[name] = cells
	if len(cells) > t.rowCnt {
		t.rowCnt = len(cells)
	}
}

// Headers 컬럼명 목록 (순서 유지)
func (t *RawTable) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// RowCount 데이터 행 수
func (t *RawTable) RowCount() int {
	return t.rowCnt
}

// Has 컬럼 존재 여부
func (t *RawTable) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// HasAll 모든 컬럼 존재 여부
func (t *RawTable) HasAll(names ...string) bool {
	for _, n := range names {
		if !t.Has(n) {
			return false
		}
	}
	return true
}

// Column 컬럼 셀 목록. 없으면 nil.
func (t *RawTable) Column(name string) []any {
	return t.cols[name]
}

// Cell 셀 값. 컬럼이 없거나 행이 짧으면 nil.
func (t *RawTable) Cell(name string, row int) any {
	cells, ok := t.cols[name]
	if !ok || row < 0 || row >= len(cells) {
		return nil
	}
	return cells[row]
}

// clone 깊은 복사. 원본 테이블을 변형하지 않기 위한 내부용.
func (t *RawTable) clone() *RawTable {
	out := NewRawTable()
	for _, h := range t.headers {
		cells := make([]any, len(t.cols[h]))
		copy(cells, t.cols[h])
		out.AddColumn(h, cells)
	}
	out.rowCnt = t.rowCnt
	return out
}
