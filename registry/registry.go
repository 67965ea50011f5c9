// Package registry is the closed catalog of supported proof configurations:
// which seal (PoRep) and PoSt circuits exist, the versioned configuration
// each one implies, the stable identifier of its compiled circuit, and where
// that circuit's verifying key and parameters live, both on disk and in a
// content-addressed store.
package registry

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/storswiftlabs/rust-filecoin-proofs-api/types"
)

// RegisteredSealProof is a supported seal (PoRep) proof configuration,
// one per sector size class.
type RegisteredSealProof int64

const (
	StackedDrg1KiBSealV1 RegisteredSealProof = iota
	StackedDrg16MiBSealV1
	StackedDrg256MiBSealV1
	StackedDrg1GiBSealV1
	StackedDrg32GiBSealV1
)

// RegisteredPoStProof is a supported PoSt proof configuration. It shares
// sector size classes with RegisteredSealProof but is a distinct catalog
// with a distinct configuration shape.
type RegisteredPoStProof int64

const (
	StackedDrg1KiBPoStV1 RegisteredPoStProof = iota
	StackedDrg16MiBPoStV1
	StackedDrg256MiBPoStV1
	StackedDrg1GiBPoStV1
	StackedDrg32GiBPoStV1
)

// proofInfo is everything the catalog itself knows about a variant. Adding a
// variant is one row here plus its rows in the deployed tables.
type proofInfo struct {
	version    Version
	sectorSize types.SectorSize
	tag        string
}

var sealProofInfos = map[RegisteredSealProof]proofInfo{
	StackedDrg1KiBSealV1:   {version: V1, sectorSize: types.OneKiBSectorSize, tag: "StackedDrg1KiBV1"},
	StackedDrg16MiBSealV1:  {version: V1, sectorSize: types.SixteenMiBSectorSize, tag: "StackedDrg16MiBV1"},
	StackedDrg256MiBSealV1: {version: V1, sectorSize: types.TwoHundredFiftySixMiBSectorSize, tag: "StackedDrg256MiBV1"},
	StackedDrg1GiBSealV1:   {version: V1, sectorSize: types.OneGiBSectorSize, tag: "StackedDrg1GiBV1"},
	StackedDrg32GiBSealV1:  {version: V1, sectorSize: types.ThirtyTwoGiBSectorSize, tag: "StackedDrg32GiBV1"},
}

var postProofInfos = map[RegisteredPoStProof]proofInfo{
	StackedDrg1KiBPoStV1:   {version: V1, sectorSize: types.OneKiBSectorSize, tag: "StackedDrg1KiBV1"},
	StackedDrg16MiBPoStV1:  {version: V1, sectorSize: types.SixteenMiBSectorSize, tag: "StackedDrg16MiBV1"},
	StackedDrg256MiBPoStV1: {version: V1, sectorSize: types.TwoHundredFiftySixMiBSectorSize, tag: "StackedDrg256MiBV1"},
	StackedDrg1GiBPoStV1:   {version: V1, sectorSize: types.OneGiBSectorSize, tag: "StackedDrg1GiBV1"},
	StackedDrg32GiBPoStV1:  {version: V1, sectorSize: types.ThirtyTwoGiBSectorSize, tag: "StackedDrg32GiBV1"},
}

var sealProofsByTag = func() map[string]RegisteredSealProof {
	m := make(map[string]RegisteredSealProof, len(sealProofInfos))
	for p, info := range sealProofInfos {
		m[info.tag] = p
	}
	return m
}()

var postProofsByTag = func() map[string]RegisteredPoStProof {
	m := make(map[string]RegisteredPoStProof, len(postProofInfos))
	for p, info := range postProofInfos {
		m[info.tag] = p
	}
	return m
}()

// SealProofs returns every registered seal proof, in catalog order.
func SealProofs() []RegisteredSealProof {
	out := make([]RegisteredSealProof, 0, len(sealProofInfos))
	for p := range sealProofInfos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PoStProofs returns every registered PoSt proof, in catalog order.
func PoStProofs() []RegisteredPoStProof {
	out := make([]RegisteredPoStProof, 0, len(postProofInfos))
	for p := range postProofInfos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Version returns the proof version of the variant. Out-of-catalog values
// report version 0, which every derivation rejects.
func (p RegisteredSealProof) Version() Version {
	return sealProofInfos[p].version
}

// SectorSize returns the sector size the variant's circuit targets.
func (p RegisteredSealProof) SectorSize() (types.SectorSize, error) {
	info, ok := sealProofInfos[p]
	if !ok {
		return 0, errors.Errorf("unsupported seal proof %d", p)
	}
	return info.sectorSize, nil
}

// SinglePartitionProofLen returns the byte length of one partition's proof.
func (p RegisteredSealProof) SinglePartitionProofLen() int {
	return types.SinglePartitionProofLen
}

func (p RegisteredSealProof) String() string {
	if info, ok := sealProofInfos[p]; ok {
		return info.tag
	}
	return "UnknownSealProof"
}

// MarshalText encodes the variant as its stable catalog tag.
func (p RegisteredSealProof) MarshalText() ([]byte, error) {
	info, ok := sealProofInfos[p]
	if !ok {
		return nil, errors.Errorf("unsupported seal proof %d", p)
	}
	return []byte(info.tag), nil
}

// UnmarshalText decodes a catalog tag. Unknown tags fail rather than default
// to any variant.
func (p *RegisteredSealProof) UnmarshalText(tag []byte) error {
	proof, ok := sealProofsByTag[string(tag)]
	if !ok {
		return errors.Errorf("unknown seal proof tag %q", string(tag))
	}
	*p = proof
	return nil
}

// Version returns the proof version of the variant. Out-of-catalog values
// report version 0, which every derivation rejects.
func (p RegisteredPoStProof) Version() Version {
	return postProofInfos[p].version
}

// SectorSize returns the sector size the variant's circuit targets.
func (p RegisteredPoStProof) SectorSize() (types.SectorSize, error) {
	info, ok := postProofInfos[p]
	if !ok {
		return 0, errors.Errorf("unsupported PoSt proof %d", p)
	}
	return info.sectorSize, nil
}

// Partitions returns the number of proof partitions. Every registered PoSt
// variant is a single partition; no table lookup is involved.
func (p RegisteredPoStProof) Partitions() types.PoStProofPartitions {
	return 1
}

// SinglePartitionProofLen returns the byte length of one partition's proof.
func (p RegisteredPoStProof) SinglePartitionProofLen() int {
	return types.SinglePartitionProofLen
}

func (p RegisteredPoStProof) String() string {
	if info, ok := postProofInfos[p]; ok {
		return info.tag
	}
	return "UnknownPoStProof"
}

// MarshalText encodes the variant as its stable catalog tag.
func (p RegisteredPoStProof) MarshalText() ([]byte, error) {
	info, ok := postProofInfos[p]
	if !ok {
		return nil, errors.Errorf("unsupported PoSt proof %d", p)
	}
	return []byte(info.tag), nil
}

// UnmarshalText decodes a catalog tag. Unknown tags fail rather than default
// to any variant.
func (p *RegisteredPoStProof) UnmarshalText(tag []byte) error {
	proof, ok := postProofsByTag[string(tag)]
	if !ok {
		return errors.Errorf("unknown PoSt proof tag %q", string(tag))
	}
	*p = proof
	return nil
}
