package tensor

import "fmt"

// Storage is the canonical representation of a packed tensor: an Index
// describing the physical layout plus a values buffer holding one component
// per leaf entry. The API is mode-position based; callers consult the Format
// to interpret each mode's metadata.
type Storage struct {
	format   Format
	index    Index
	values   Array
	hasIndex bool
}

// NewStorage creates empty storage for the given format. The index and
// values are installed by pack, or directly by zero-copy constructors such
// as MakeCSR.
func NewStorage(format Format) *Storage {
	return &Storage{format: format}
}

// Format returns the storage's format.
func (s *Storage) Format() Format {
	return s.format
}

// Index returns the physical metadata.
func (s *Storage) Index() Index {
	return s.index
}

// SetIndex installs the physical metadata. The index must match the
// storage's format.
func (s *Storage) SetIndex(ix Index) {
	if !ix.Format().Equals(s.format) {
		panic(fmt.Sprintf("cannot set an index of format %s on storage of format %s",
			ix.Format(), s.format))
	}
	s.index = ix
	s.hasIndex = true
}

// Values returns the values buffer. The buffer length must equal the
// index's leaf count; a mismatch is fatal at this read.
func (s *Storage) Values() Array {
	if s.hasIndex && s.values.Len() != s.index.Size() {
		panic(fmt.Sprintf("storage holds %d values but its index describes %d leaf entries",
			s.values.Len(), s.index.Size()))
	}
	return s.values
}

// SetValues installs the values buffer.
func (s *Storage) SetValues(values Array) {
	s.values = values
}

// Size returns the number of stored leaf entries, or 0 when the storage has
// not been packed yet.
func (s *Storage) Size() int {
	if !s.hasIndex {
		return 0
	}
	return s.index.Size()
}

// String returns a human-readable representation of the storage.
func (s *Storage) String() string {
	return fmt.Sprintf("Storage[%s](%d entries)", s.format, s.Size())
}
