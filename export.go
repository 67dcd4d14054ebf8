package pixelgo

import (
	"github.com/hupe1980/pixelgo/codec"
	"github.com/hupe1980/pixelgo/metadata"
)

// MarshalMetadata serializes a metadata map through the given codec after
// flattening it, so vector entries become per-element scalar keys and the
// output is a flat ordered object. A nil codec selects codec.Default.
func MarshalMetadata(c codec.Codec, m *metadata.Map) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(m.Flatten())
}
