// Package ids provides dense integer interning for the string identities
// that flow through the query engine: graph vertices, automaton states,
// edge/transition labels, and grammar symbols.
//
// Every matrix in the bitmatrix layer is indexed by small contiguous ints,
// never by the original strings. A Table is a standalone string<->int
// mapping: the automaton, rpq and cfpq packages do not use it and keep
// their own per-decomposition index maps instead. Tables are not safe for
// concurrent mutation (a query owns its tables exclusively, per spec §5),
// mirroring the core.Graph convention of documenting the locking model next
// to the type it protects -- except here there is deliberately no lock,
// since §5 scopes a Table to one single-threaded query.
package ids

import "fmt"

// Table interns strings to dense, stable, zero-based integer ids.
// The zero value is a usable empty Table.
type Table struct {
	byString map[string]int
	byID     []string
}

// NewTable returns an empty Table ready for use.
func NewTable() *Table {
	return &Table{byString: make(map[string]int)}
}

// Intern returns the id for s, allocating a new one if s has not been seen
// by this Table before. Ids are assigned in first-seen order starting at 0.
func (t *Table) Intern(s string) int {
	if t.byString == nil {
		t.byString = make(map[string]int)
	}
	if id, ok := t.byString[s]; ok {
		return id
	}
	id := len(t.byID)
	t.byString[s] = id
	t.byID = append(t.byID, s)
	return id
}

// Lookup returns the id already assigned to s, without allocating one.
func (t *Table) Lookup(s string) (int, bool) {
	id, ok := t.byString[s]
	return id, ok
}

// String returns the string that was interned under id.
// Panics if id is out of range: this is a programmer error (an id that was
// never returned by Intern/Lookup on this Table), not a user-facing one.
func (t *Table) String(id int) string {
	if id < 0 || id >= len(t.byID) {
		panic(fmt.Sprintf("ids: id %d out of range [0,%d)", id, len(t.byID)))
	}
	return t.byID[id]
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int {
	return len(t.byID)
}

// Strings returns the interned strings ordered by id. The returned slice
// must not be mutated by the caller.
func (t *Table) Strings() []string {
	return t.byID
}
