package types

import "github.com/pkg/errors"

// PoStProofPartitions is the number of partitions a PoSt proof is split
// across. Every registered PoSt variant currently uses a single partition.
type PoStProofPartitions uint64

func (p PoStProofPartitions) Int() int {
	return int(p)
}

func (p PoStProofPartitions) ProofLen() int {
	return SinglePartitionProofLen * int(p)
}

func NewPoStProofPartitions(partitions int) (PoStProofPartitions, error) {
	if partitions <= 0 {
		return 0, errors.Errorf("invalid PoSt partition count %d", partitions)
	}
	return PoStProofPartitions(partitions), nil
}
