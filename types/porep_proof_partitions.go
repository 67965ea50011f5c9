package types

import "github.com/pkg/errors"

// PoRepProofPartitions is the number of partitions a seal proof is split
// across. Partition counts come from the deployed partition table, keyed by
// sector size.
type PoRepProofPartitions uint64

// Int returns an integer representing the number of PoRep partitions
func (p PoRepProofPartitions) Int() int {
	return int(p)
}

// ProofLen returns an integer representing the number of bytes in a PoRep proof
// created with this number of partitions.
func (p PoRepProofPartitions) ProofLen() int {
	return SinglePartitionProofLen * int(p)
}

// NewPoRepProofPartitions produces the PoRepProofPartitions corresponding to
// the provided integer.
func NewPoRepProofPartitions(numPartitions int) (PoRepProofPartitions, error) {
	if numPartitions <= 0 {
		return 0, errors.Errorf("invalid PoRep partition count %d", numPartitions)
	}
	return PoRepProofPartitions(numPartitions), nil
}
