package registry

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileKind selects which cached artifact of a circuit is being addressed.
type FileKind int

const (
	KindParams FileKind = iota
	KindVerifyingKey
)

// String returns the filename extension for the kind, which is also the
// suffix of its parameter table key.
func (k FileKind) String() string {
	switch k {
	case KindVerifyingKey:
		return "vk"
	default:
		return "params"
	}
}

// ParameterCacheDirEnv overrides the parameter cache location.
const ParameterCacheDirEnv = "FIL_PROOFS_PARAMETER_CACHE"

const defaultParameterCacheDir = "/var/tmp/filecoin-proof-parameters"

// ParameterCacheDir returns the directory circuit artifacts are cached
// under. The path is only computed; nothing here creates it or checks that
// it exists.
func ParameterCacheDir() string {
	if dir := os.Getenv(ParameterCacheDirEnv); dir != "" {
		return dir
	}
	return defaultParameterCacheDir
}

func cachePath(identifier string, kind FileKind) string {
	return filepath.Join(ParameterCacheDir(), fmt.Sprintf("%s.%s", identifier, kind))
}

// CacheVerifyingKeyPath returns where the circuit's verifying key is cached.
func (c SealConfig) CacheVerifyingKeyPath() (string, error) {
	identifier, err := c.CacheIdentifier()
	if err != nil {
		return "", err
	}
	return cachePath(identifier, KindVerifyingKey), nil
}

// CacheParamsPath returns where the circuit's Groth16 parameters are cached.
func (c SealConfig) CacheParamsPath() (string, error) {
	identifier, err := c.CacheIdentifier()
	if err != nil {
		return "", err
	}
	return cachePath(identifier, KindParams), nil
}

// CacheVerifyingKeyPath returns where the circuit's verifying key is cached.
func (c PoStConfig) CacheVerifyingKeyPath() (string, error) {
	identifier, err := c.CacheIdentifier()
	if err != nil {
		return "", err
	}
	return cachePath(identifier, KindVerifyingKey), nil
}

// CacheParamsPath returns where the circuit's Groth16 parameters are cached.
func (c PoStConfig) CacheParamsPath() (string, error) {
	identifier, err := c.CacheIdentifier()
	if err != nil {
		return "", err
	}
	return cachePath(identifier, KindParams), nil
}
