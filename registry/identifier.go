package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Circuit family names. They prefix the cache identifier so a cache
// directory listing stays legible next to the hash.
const (
	sealCircuitName = "stacked-proof-of-replication"
	postCircuitName = "proof-of-spacetime-election"
)

// circuitIdentifier derives the stable identifier of a compiled circuit from
// its canonical spec string. The identifier is a pure function of the
// configuration fields folded into spec, which is what makes the parameter
// cache reusable across runs and across machines.
func circuitIdentifier(v Version, circuit, spec string) string {
	sum := sha256.Sum256([]byte(spec))
	return fmt.Sprintf("%s-%s-%s", v, circuit, hex.EncodeToString(sum[:]))
}

// CacheIdentifier returns the identifier of the compiled circuit this
// configuration selects. Configurations with identical fields yield
// byte-identical identifiers; configurations differing in sector size or
// partition count yield distinct ones.
func (c SealConfig) CacheIdentifier() (string, error) {
	switch c.Version {
	case V1:
		spec := fmt.Sprintf("%s-sector-%d-partitions-%d",
			sealCircuitName, c.SectorSize.Uint64(), c.Partitions.Int())
		return circuitIdentifier(c.Version, sealCircuitName, spec), nil
	default:
		return "", &UnsupportedVersionError{Version: c.Version}
	}
}

// CacheIdentifier returns the identifier of the compiled circuit this
// configuration selects. Priority is deliberately not part of the spec
// string: prioritized and non-prioritized proving share one circuit.
func (c PoStConfig) CacheIdentifier() (string, error) {
	switch c.Version {
	case V1:
		spec := fmt.Sprintf("%s-sector-%d-challenges-%d-nodes-%d",
			postCircuitName, c.SectorSize.Uint64(), c.ChallengeCount, c.ChallengedNodes)
		return circuitIdentifier(c.Version, postCircuitName, spec), nil
	default:
		return "", &UnsupportedVersionError{Version: c.Version}
	}
}
