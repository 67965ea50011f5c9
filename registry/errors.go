package registry

import (
	"fmt"

	"github.com/storswiftlabs/rust-filecoin-proofs-api/types"
)

// UnsupportedVersionError is returned when a configuration names a proof
// version this code has no dispatch branch for. Unreachable while V1 is the
// only version; it exists so future versions fail loudly instead of
// mis-deriving identifiers.
type UnsupportedVersionError struct {
	Version Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported proof version %s", e.Version)
}

// ConfigurationDefectError is returned when a sector size registered in the
// proof catalog has no row in the partition table. The catalog and the table
// must ship in lock-step; no retry on the caller's side can repair this, so
// the embedding application usually treats it as fatal.
type ConfigurationDefectError struct {
	SectorSize types.SectorSize
}

func (e *ConfigurationDefectError) Error() string {
	return fmt.Sprintf("no partition table entry for sector size %s", e.SectorSize)
}

// MissingParamsError is returned when the parameter table has no artifact
// published under a derived identifier and kind. The table may lag the
// catalog during a rollout, so callers can treat this as "not yet published"
// and retry out-of-band.
type MissingParamsError struct {
	Identifier string
	Kind       FileKind
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("missing params for %s.%s", e.Identifier, e.Kind)
}
