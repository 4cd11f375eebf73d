package index

import "sync/atomic"

// Holder publishes an Index to concurrent readers.
//
// The held Index is a value: a corpus reload builds a replacement entirely
// out-of-band and swaps it in atomically. Readers either see the old
// snapshot or the new one, never a partially rebuilt state.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder creates a Holder publishing the given index.
func NewHolder(idx *Index) *Holder {
	h := &Holder{}
	h.current.Store(idx)
	return h
}

// Load returns the currently published index.
func (h *Holder) Load() *Index {
	return h.current.Load()
}

// Store atomically replaces the published index.
func (h *Holder) Store(idx *Index) {
	h.current.Store(idx)
}
