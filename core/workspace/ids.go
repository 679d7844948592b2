package workspace

import (
	"strconv"

	"github.com/google/uuid"

	"capacity-cost/core/types"
)

// IDSource hands out tier ids. An id is never handed out twice.
type IDSource interface {
	Next() types.TierID
}

// Sequence produces cap-1, cap-2, ... and never rewinds
type Sequence struct {
	prefix string
	next   uint64
}

// NewSequence starts a sequence at cap-1
func NewSequence() *Sequence {
	return &Sequence{prefix: "cap-", next: 1}
}

// Next returns the next id
func (s *Sequence) Next() types.TierID {
	id := types.TierID(s.prefix + strconv.FormatUint(s.next, 10))
	s.next++
	return id
}

// UUIDSource produces random UUIDv4 ids
type UUIDSource struct{}

// NewUUIDSource creates a UUID id source
func NewUUIDSource() UUIDSource {
	return UUIDSource{}
}

// Next returns a fresh UUID
func (UUIDSource) Next() types.TierID {
	return types.TierID(uuid.NewString())
}
