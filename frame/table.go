package frame

// memTable is the in-memory Table implementation.
type memTable struct {
	order []string
	cols  map[string]Series
	index any
}

// NewTable assembles a table from an index and ordered columns. The index may
// be a Series (single level), a MultiIndex, or nil for none. A repeated
// column name replaces the earlier column and keeps its position.
func NewTable(index any, cols ...Series) Table {
	t := &memTable{cols: make(map[string]Series, len(cols)), index: index}
	for _, c := range cols {
		name := c.Name()
		if _, ok := t.cols[name]; !ok {
			t.order = append(t.order, name)
		}
		t.cols[name] = c
	}
	return t
}

func (t *memTable) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *memTable) Column(name string) (Series, bool) {
	c, ok := t.cols[name]
	return c, ok
}

func (t *memTable) Index() any { return t.index }

// memMultiIndex is the in-memory MultiIndex implementation.
type memMultiIndex struct {
	levels []Series
}

// NewMultiIndex assembles a multi-level index from per-level labeled arrays.
func NewMultiIndex(levels ...Series) MultiIndex {
	ls := make([]Series, len(levels))
	copy(ls, levels)
	return &memMultiIndex{levels: ls}
}

func (m *memMultiIndex) NLevels() int       { return len(m.levels) }
func (m *memMultiIndex) Level(i int) Series { return m.levels[i] }
