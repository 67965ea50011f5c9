package registry

import (
	"github.com/storswiftlabs/rust-filecoin-proofs-api/types"
)

// Election PoSt challenge constants shared by every V1 variant.
const (
	PoStChallengeCount  = 66
	PoStChallengedNodes = 1
)

// SealConfig is the versioned configuration of a seal circuit. The Version
// field tags the shape: every derivation dispatches on it, so a future proof
// version is a new branch, never a reinterpretation of V1 fields.
type SealConfig struct {
	Version    Version
	SectorSize types.SectorSize
	Partitions types.PoRepProofPartitions
}

// PoStConfig is the versioned configuration of a PoSt circuit. Priority
// marks the proof for prioritized prover scheduling; it does not change the
// circuit and is excluded from the cache identifier.
type PoStConfig struct {
	Version         Version
	SectorSize      types.SectorSize
	ChallengeCount  int
	ChallengedNodes int
	Priority        bool
}
