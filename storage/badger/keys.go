package badger

import (
	"encoding/binary"

	"github.com/scholarch/expertmatch/core"
)

// Key prefixes for different data types
const (
	expertRecordPrefix = "exprec"
	expertNamePrefix   = "expnam"
)

// makeExpertKey generates a key for an expert record by ID.
// The ID is written in BigEndian order so iteration over the prefix
// yields records in ascending ID order.
func makeExpertKey(id core.ID) []byte {
	prefix := expertRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeExpertNameKey generates a composite key for expert lookup by name.
// Format: prefix:name
func makeExpertNameKey(name string) []byte {
	prefix := expertNamePrefix + ":"
	buf := make([]byte, len(prefix)+len(name))
	offset := copy(buf, prefix)
	copy(buf[offset:], name)
	return buf
}
