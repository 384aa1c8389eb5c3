package earley

import "github.com/earley-go/cfparse/internal/ordered"

// Entry is a chart entry: a dotted item together with the column where
// its production was predicted (Origin) and the column it currently
// lives in (Index). Predecessors records every entry that caused this
// one to be inserted, in the order they did so; the tree reconstructor
// walks this set backwards.
type Entry struct {
	Item         Item
	Origin       int
	Index        int
	predecessors *ordered.Set[*Entry]
}

// Predecessors returns e's predecessor entries in insertion order.
func (e *Entry) Predecessors() []*Entry {
	return e.predecessors.Slice()
}

func (e *Entry) addPredecessor(p *Entry) {
	if p != nil {
		e.predecessors.Add(p)
	}
}

// Column is one position of the Earley chart: the set of entries
// predicted, scanned, or completed at that input position.
type Column struct {
	entries *ordered.Set[*Entry]
	byKey   map[entryKey]*Entry
}

type entryKey struct {
	item   itemKey
	origin int
}

func newColumn() *Column {
	return &Column{
		entries: ordered.New[*Entry](),
		byKey:   make(map[entryKey]*Entry),
	}
}

// insert adds (item, origin) to the column at position index, recording
// pred as a predecessor. If an entry with the same (item, origin)
// already exists, pred is added to its predecessor set instead of
// creating a duplicate; the boolean result reports whether a new entry
// was created.
func (c *Column) insert(item Item, origin, index int, pred *Entry) (*Entry, bool) {
	key := entryKey{item: item.key(), origin: origin}
	if e, ok := c.byKey[key]; ok {
		e.addPredecessor(pred)
		return e, false
	}
	e := &Entry{
		Item:         item,
		Origin:       origin,
		Index:        index,
		predecessors: ordered.New[*Entry](),
	}
	e.addPredecessor(pred)
	c.byKey[key] = e
	c.entries.Add(e)
	return e, true
}

// Entries returns the column's entries in insertion order.
func (c *Column) Entries() []*Entry {
	return c.entries.Slice()
}

// Chart is the full set of columns produced by a parse attempt, one
// more than the length of the token stream.
type Chart struct {
	columns []*Column
}

// Len returns the number of columns (len(tokens) + 1).
func (c *Chart) Len() int { return len(c.columns) }

// Column returns the column at index k.
func (c *Chart) Column(k int) *Column { return c.columns[k] }
