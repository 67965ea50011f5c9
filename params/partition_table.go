package params

import (
	"github.com/storswiftlabs/rust-filecoin-proofs-api/types"
)

// PartitionTable maps a sector size to the number of PoRep proof partitions
// used at that size. It is built once and read-only afterwards, so lookups
// are safe from any number of goroutines.
//
// The table must be deployed in lock-step with the proof catalog: every
// sector size the catalog registers has to have a row here.
type PartitionTable struct {
	partitions map[types.SectorSize]uint64
}

// NewPartitionTable copies the given mapping into an immutable table.
func NewPartitionTable(partitions map[types.SectorSize]uint64) *PartitionTable {
	m := make(map[types.SectorSize]uint64, len(partitions))
	for size, count := range partitions {
		m[size] = count
	}
	return &PartitionTable{partitions: m}
}

// DefaultPartitions returns the deployed PoRep partition constants.
func DefaultPartitions() *PartitionTable {
	return NewPartitionTable(map[types.SectorSize]uint64{
		types.OneKiBSectorSize:                2,
		types.SixteenMiBSectorSize:            2,
		types.TwoHundredFiftySixMiBSectorSize: 2,
		types.OneGiBSectorSize:                2,
		types.ThirtyTwoGiBSectorSize:          10,
	})
}

// PartitionCount returns the partition count registered for the sector size.
func (t *PartitionTable) PartitionCount(size types.SectorSize) (uint64, bool) {
	count, ok := t.partitions[size]
	return count, ok
}
