package registry

import "fmt"

// Version identifies a generation of registered proof circuits. Members are
// only ever added; an existing member never changes meaning. Every currently
// registered proof resolves to V1.
type Version int64

const (
	// V1 covers the stacked-DRG seal circuits and the election PoSt circuit.
	V1 Version = 1
)

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	default:
		return fmt.Sprintf("version-%d", int64(v))
	}
}
