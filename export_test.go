package pixelgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pixelgo"
	"github.com/hupe1980/pixelgo/codec"
	"github.com/hupe1980/pixelgo/metadata"
)

func TestMarshalMetadataFlattens(t *testing.T) {
	m := metadata.New()
	require.NoError(t, m.Set("Model", metadata.Of("ABC-1")))
	require.NoError(t, m.Set("Gain", metadata.SliceOf([]float64{1.5, 2, 2.5})))

	out, err := pixelgo.MarshalMetadata(codec.JSON{}, m)
	require.NoError(t, err)

	assert.JSONEq(t, `{"Model":"ABC-1","Gain #1":1.5,"Gain #2":2,"Gain #3":2.5}`, string(out))

	// Insertion order survives into the document.
	assert.Equal(t, `{"Model":"ABC-1","Gain #1":1.5,"Gain #2":2,"Gain #3":2.5}`, string(out))
}

func TestMarshalMetadataNilCodecUsesDefault(t *testing.T) {
	m := metadata.New()
	require.NoError(t, m.Set("Exposure", metadata.Of(int32(20))))

	out, err := pixelgo.MarshalMetadata(nil, m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Exposure":20}`, string(out))
}
