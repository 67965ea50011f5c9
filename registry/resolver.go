package registry

import (
	"fmt"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"

	"github.com/storswiftlabs/rust-filecoin-proofs-api/params"
	"github.com/storswiftlabs/rust-filecoin-proofs-api/types"
)

var log = logging.Logger("proofs-registry")

// Registry answers catalog queries against an injected partition table and
// parameters manifest. Both tables are read-only once constructed, so a
// Registry is safe for concurrent use and holds no locks. Construction of
// the tables must happen-before any query; that ordering is the caller's
// obligation.
type Registry struct {
	partitions *params.PartitionTable
	parameters *params.ParameterTable
}

// NewRegistry builds a registry over explicit tables.
func NewRegistry(partitions *params.PartitionTable, parameters *params.ParameterTable) *Registry {
	return &Registry{partitions: partitions, parameters: parameters}
}

// DefaultRegistry wires the deployed partition constants and the embedded
// parameters manifest.
func DefaultRegistry() (*Registry, error) {
	parameters, err := params.DefaultParameters()
	if err != nil {
		return nil, err
	}
	return NewRegistry(params.DefaultPartitions(), parameters), nil
}

// SealPartitions returns the number of proof partitions for the proof's
// sector size. A catalog sector size with no partition table row means the
// catalog and table were not deployed in lock-step; that surfaces as a
// ConfigurationDefectError, not a recoverable miss.
func (r *Registry) SealPartitions(p RegisteredSealProof) (types.PoRepProofPartitions, error) {
	size, err := p.SectorSize()
	if err != nil {
		return 0, err
	}
	count, ok := r.partitions.PartitionCount(size)
	if !ok {
		return 0, &ConfigurationDefectError{SectorSize: size}
	}
	return types.NewPoRepProofPartitions(int(count))
}

// SealConfig resolves the variant to its versioned configuration.
func (r *Registry) SealConfig(p RegisteredSealProof) (SealConfig, error) {
	switch v := p.Version(); v {
	case V1:
		size, err := p.SectorSize()
		if err != nil {
			return SealConfig{}, err
		}
		partitions, err := r.SealPartitions(p)
		if err != nil {
			return SealConfig{}, err
		}
		return SealConfig{
			Version:    V1,
			SectorSize: size,
			Partitions: partitions,
		}, nil
	default:
		return SealConfig{}, &UnsupportedVersionError{Version: v}
	}
}

// PoStConfig resolves the variant to its versioned configuration.
func (r *Registry) PoStConfig(p RegisteredPoStProof) (PoStConfig, error) {
	switch v := p.Version(); v {
	case V1:
		size, err := p.SectorSize()
		if err != nil {
			return PoStConfig{}, err
		}
		return PoStConfig{
			Version:         V1,
			SectorSize:      size,
			ChallengeCount:  PoStChallengeCount,
			ChallengedNodes: PoStChallengedNodes,
			Priority:        true,
		}, nil
	default:
		return PoStConfig{}, &UnsupportedVersionError{Version: v}
	}
}

// SealCircuitIdentifier returns the cache identifier of the variant's
// compiled circuit.
func (r *Registry) SealCircuitIdentifier(p RegisteredSealProof) (string, error) {
	cfg, err := r.SealConfig(p)
	if err != nil {
		return "", err
	}
	return cfg.CacheIdentifier()
}

// PoStCircuitIdentifier returns the cache identifier of the variant's
// compiled circuit.
func (r *Registry) PoStCircuitIdentifier(p RegisteredPoStProof) (string, error) {
	cfg, err := r.PoStConfig(p)
	if err != nil {
		return "", err
	}
	return cfg.CacheIdentifier()
}

// contentCid looks up the published artifact for an identifier and kind and
// parses its content identifier.
func (r *Registry) contentCid(identifier string, kind FileKind) (cid.Cid, error) {
	key := fmt.Sprintf("%s.%s", identifier, kind)
	file, ok := r.parameters.Lookup(key)
	if !ok {
		log.Infof("no artifact published for %s", key)
		return cid.Undef, &MissingParamsError{Identifier: identifier, Kind: kind}
	}
	c, err := cid.Decode(file.CID)
	if err != nil {
		return cid.Undef, errors.Wrapf(err, "corrupt content id for %s", key)
	}
	return c, nil
}

// SealParamsCid returns the content identifier of the variant's published
// Groth16 parameters.
func (r *Registry) SealParamsCid(p RegisteredSealProof) (cid.Cid, error) {
	identifier, err := r.SealCircuitIdentifier(p)
	if err != nil {
		return cid.Undef, err
	}
	return r.contentCid(identifier, KindParams)
}

// SealVerifyingKeyCid returns the content identifier of the variant's
// published verifying key.
func (r *Registry) SealVerifyingKeyCid(p RegisteredSealProof) (cid.Cid, error) {
	identifier, err := r.SealCircuitIdentifier(p)
	if err != nil {
		return cid.Undef, err
	}
	return r.contentCid(identifier, KindVerifyingKey)
}

// PoStParamsCid returns the content identifier of the variant's published
// Groth16 parameters.
func (r *Registry) PoStParamsCid(p RegisteredPoStProof) (cid.Cid, error) {
	identifier, err := r.PoStCircuitIdentifier(p)
	if err != nil {
		return cid.Undef, err
	}
	return r.contentCid(identifier, KindParams)
}

// PoStVerifyingKeyCid returns the content identifier of the variant's
// published verifying key.
func (r *Registry) PoStVerifyingKeyCid(p RegisteredPoStProof) (cid.Cid, error) {
	identifier, err := r.PoStCircuitIdentifier(p)
	if err != nil {
		return cid.Undef, err
	}
	return r.contentCid(identifier, KindVerifyingKey)
}
