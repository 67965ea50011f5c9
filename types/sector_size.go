package types

import (
	"github.com/docker/go-units"
	"github.com/pkg/errors"
)

// SectorSize is the amount of bytes in a sector. This amount will be slightly
// greater than the number of user bytes which can be written to a sector due to
// bit-padding.
type SectorSize uint64

// Sector size classes with registered proof circuits. The small classes exist
// for tests and devnets; mainnet sectors use the large ones.
const (
	OneKiBSectorSize                SectorSize = 1024
	SixteenMiBSectorSize            SectorSize = 16 << 20
	TwoHundredFiftySixMiBSectorSize SectorSize = 256 << 20
	OneGiBSectorSize                SectorSize = 1 << 30
	ThirtyTwoGiBSectorSize          SectorSize = 32 << 30
)

// Uint64 returns the sector size as a plain byte count.
func (s SectorSize) Uint64() uint64 {
	return uint64(s)
}

// String renders the sector size in binary units, e.g. "256MiB".
func (s SectorSize) String() string {
	return units.BytesSize(float64(s))
}

// NewSectorSizeFromString parses a human-readable byte count such as "32GiB"
// or "1024" into a SectorSize.
func NewSectorSizeFromString(size string) (SectorSize, error) {
	n, err := units.RAMInBytes(size)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid sector size %q", size)
	}
	if n <= 0 {
		return 0, errors.Errorf("invalid sector size %q", size)
	}
	return SectorSize(n), nil
}
