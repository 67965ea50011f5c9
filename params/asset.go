package params

import (
	"embed"
)

//go:embed parameters.json
var paramsFS embed.FS

// ParametersJSON returns the embedded parameters manifest, byte-for-byte in
// the format go-paramfetch consumes, so callers can hand it straight to a
// fetcher.
func ParametersJSON() ([]byte, error) {
	return paramsFS.ReadFile("parameters.json")
}

// DefaultParameters builds the parameter table from the embedded manifest.
func DefaultParameters() (*ParameterTable, error) {
	data, err := ParametersJSON()
	if err != nil {
		return nil, err
	}
	files, err := ParseParameters(data)
	if err != nil {
		return nil, err
	}
	return NewParameterTable(files), nil
}
