package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tf "github.com/storswiftlabs/rust-filecoin-proofs-api/testhelpers/testflags"
	"github.com/storswiftlabs/rust-filecoin-proofs-api/types"
)

func TestDefaultPartitions(t *testing.T) {
	tf.UnitTest(t)

	table := DefaultPartitions()

	for size, want := range map[types.SectorSize]uint64{
		types.OneKiBSectorSize:                2,
		types.SixteenMiBSectorSize:            2,
		types.TwoHundredFiftySixMiBSectorSize: 2,
		types.OneGiBSectorSize:                2,
		types.ThirtyTwoGiBSectorSize:          10,
	} {
		count, ok := table.PartitionCount(size)
		require.True(t, ok, "no entry for %s", size)
		assert.Equal(t, want, count)
	}

	_, ok := table.PartitionCount(types.SectorSize(512))
	assert.False(t, ok)
}

func TestPartitionTableIsACopy(t *testing.T) {
	tf.UnitTest(t)

	src := map[types.SectorSize]uint64{types.OneKiBSectorSize: 2}
	table := NewPartitionTable(src)

	src[types.OneKiBSectorSize] = 7
	src[types.OneGiBSectorSize] = 1

	count, ok := table.PartitionCount(types.OneKiBSectorSize)
	require.True(t, ok)
	assert.Equal(t, uint64(2), count)

	_, ok = table.PartitionCount(types.OneGiBSectorSize)
	assert.False(t, ok)
}

func TestEmbeddedManifest(t *testing.T) {
	tf.UnitTest(t)

	data, err := ParametersJSON()
	require.NoError(t, err)
	files, err := ParseParameters(data)
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for key, file := range files {
		assert.NotEmpty(t, file.CID, "no cid for %s", key)
		assert.NotEmpty(t, file.Digest, "no digest for %s", key)
		assert.True(t, file.SectorSize > 0, "no sector size for %s", key)
	}

	table := NewParameterTable(files)
	assert.Equal(t, len(files), table.Len())

	_, ok := table.Lookup("v1-no-such-circuit.params")
	assert.False(t, ok)
}

func TestParseParametersRejectsGarbage(t *testing.T) {
	tf.UnitTest(t)

	_, err := ParseParameters([]byte("not json"))
	assert.Error(t, err)
}
