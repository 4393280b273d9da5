package aggregate

// Table maps state codes to their Accumulators. It grows without bound as
// new codes appear, never deletes, and remembers first-seen order so reports
// list states in the order the input introduced them.
//
// Table is not safe for concurrent use; the aggregation engine is
// single-threaded and folds records strictly in input order.
type Table struct {
	byCode map[string]*Accumulator
	order  []string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{byCode: make(map[string]*Accumulator)}
}

// GetOrCreate returns the Accumulator for code, allocating and registering a
// new one on first sight. Lookup is by exact string match.
func (t *Table) GetOrCreate(code string) *Accumulator {
	if a, ok := t.byCode[code]; ok {
		return a
	}
	a := newAccumulator(code)
	t.byCode[code] = a
	t.order = append(t.order, code)
	return a
}

// Get returns the Accumulator for code if it exists.
func (t *Table) Get(code string) (*Accumulator, bool) {
	a, ok := t.byCode[code]
	return a, ok
}

// Len reports the number of distinct state codes seen.
func (t *Table) Len() int { return len(t.order) }

// Codes returns the state codes in first-seen order.
func (t *Table) Codes() []string {
	codes := make([]string, len(t.order))
	copy(codes, t.order)
	return codes
}

// All returns the accumulators in first-seen order. The slice is rebuilt on
// every call, so iteration is freely restartable.
func (t *Table) All() []*Accumulator {
	accs := make([]*Accumulator, len(t.order))
	for i, code := range t.order {
		accs[i] = t.byCode[code]
	}
	return accs
}
