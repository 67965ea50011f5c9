package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tf "github.com/storswiftlabs/rust-filecoin-proofs-api/testhelpers/testflags"
)

func TestSectorSizeString(t *testing.T) {
	tf.UnitTest(t)

	assert.Equal(t, "1KiB", OneKiBSectorSize.String())
	assert.Equal(t, "16MiB", SixteenMiBSectorSize.String())
	assert.Equal(t, "256MiB", TwoHundredFiftySixMiBSectorSize.String())
	assert.Equal(t, "1GiB", OneGiBSectorSize.String())
	assert.Equal(t, "32GiB", ThirtyTwoGiBSectorSize.String())
}

func TestNewSectorSizeFromString(t *testing.T) {
	tf.UnitTest(t)

	for _, size := range []SectorSize{
		OneKiBSectorSize,
		SixteenMiBSectorSize,
		TwoHundredFiftySixMiBSectorSize,
		OneGiBSectorSize,
		ThirtyTwoGiBSectorSize,
	} {
		parsed, err := NewSectorSizeFromString(size.String())
		require.NoError(t, err)
		assert.Equal(t, size, parsed)
	}

	parsed, err := NewSectorSizeFromString("1024")
	require.NoError(t, err)
	assert.Equal(t, OneKiBSectorSize, parsed)

	_, err = NewSectorSizeFromString("a few bytes")
	assert.Error(t, err)

	_, err = NewSectorSizeFromString("-1KiB")
	assert.Error(t, err)
}
