package clasp

// symbolTable is a single binding frame.
type symbolTable struct {
	n map[string]*Value
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]*Value),
	}
}

func (st *symbolTable) Has(name string) bool {
	_, ok := st.n[name]
	return ok
}

func (st *symbolTable) Set(name string, value *Value) {
	st.n[name] = value
}

func (st *symbolTable) Get(name string) (*Value, bool) {
	value, ok := st.n[name]
	return value, ok
}

func (st *symbolTable) Delete(name string) {
	delete(st.n, name)
}

func (st *symbolTable) Len() int {
	return len(st.n)
}
