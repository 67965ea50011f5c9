package params

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ParamFile is one row of the parameters manifest: the published artifact for
// a circuit identifier and file kind. CID addresses the file's content;
// Digest lets a fetcher validate what it downloaded. Neither is interpreted
// here beyond CID syntax at lookup time.
type ParamFile struct {
	CID        string `json:"cid"`
	Digest     string `json:"digest"`
	SectorSize uint64 `json:"sector_size"`
}

// ParameterTable maps a parameter filename key, "<identifier>.params" or
// "<identifier>.vk", to its published artifact. Like PartitionTable it is
// built once and read-only afterwards.
//
// The table may legitimately lag the proof catalog while new circuits roll
// out, so a missing key is a recoverable condition for callers.
type ParameterTable struct {
	files map[string]ParamFile
}

// ParseParameters decodes a parameters manifest in the JSON format consumed
// by go-paramfetch.
func ParseParameters(data []byte) (map[string]ParamFile, error) {
	var files map[string]ParamFile
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, errors.Wrap(err, "decoding parameters manifest")
	}
	return files, nil
}

// NewParameterTable copies the given manifest rows into an immutable table.
func NewParameterTable(files map[string]ParamFile) *ParameterTable {
	m := make(map[string]ParamFile, len(files))
	for key, file := range files {
		m[key] = file
	}
	return &ParameterTable{files: m}
}

// Lookup returns the artifact published under the exact filename key.
func (t *ParameterTable) Lookup(key string) (ParamFile, bool) {
	file, ok := t.files[key]
	return file, ok
}

// Len returns the number of published artifacts.
func (t *ParameterTable) Len() int {
	return len(t.files)
}
