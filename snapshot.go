package pixelgo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
)

// Snapshot layout:
//
//	[0:4]   magic "PXB1"
//	[4:6]   format version (little-endian)
//	[6]     pixel type discriminant
//	[7]     reserved (zero)
//	[8:28]  shape extents X,Y,Z,T,C as uint32 little-endian
//	[28:]   zstd-compressed sample payload, little-endian wire encoding
var snapshotMagic = [4]byte{'P', 'X', 'B', '1'}

const (
	snapshotVersion   = uint16(1)
	snapshotHeaderLen = 28
)

// ErrInvalidSnapshot reports a snapshot stream whose header or payload does
// not describe a variant this version can load.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// SaveToWriter writes a self-describing snapshot of the variant to w. The
// snapshot carries the pixel type and shape in its header, so it can be
// loaded without out-of-band knowledge via NewFromReader.
func (v *VariantPixelBuffer) SaveToWriter(w io.Writer, opts ...Option) error {
	o := applyOptions(opts)

	err := v.saveToWriter(w)
	o.logger.LogSnapshot("save", v.typ, v.Len(), err)
	return err
}

func (v *VariantPixelBuffer) saveToWriter(w io.Writer) error {
	hdr, err := v.snapshotHeader()
	if err != nil {
		return err
	}
	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	payload, err := encodeRange(v, 0, v.Len(), binary.LittleEndian)
	if err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return fmt.Errorf("failed to write snapshot payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush snapshot payload: %w", err)
	}
	return nil
}

func (v *VariantPixelBuffer) snapshotHeader() ([]byte, error) {
	shape := v.Shape()
	hdr := make([]byte, snapshotHeaderLen)
	copy(hdr[0:4], snapshotMagic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], snapshotVersion)
	hdr[6] = byte(v.typ)

	for i, e := range []int{shape.X, shape.Y, shape.Z, shape.T, shape.C} {
		if e < 1 || uint64(e) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: extent %d not representable", ErrInvalidShape, e)
		}
		binary.LittleEndian.PutUint32(hdr[8+4*i:], uint32(e))
	}
	return hdr, nil
}

// NewFromReader loads a variant from a snapshot stream produced by
// SaveToWriter. It fails with ErrInvalidSnapshot on a bad magic, an
// unsupported version or a truncated payload.
func NewFromReader(r io.Reader, opts ...Option) (*VariantPixelBuffer, error) {
	o := applyOptions(opts)

	v, err := newFromReader(r)
	if err != nil {
		o.logger.LogSnapshot("load", pixel.Unknown, 0, err)
		return nil, err
	}
	o.logger.LogSnapshot("load", v.typ, v.Len(), nil)
	return v, nil
}

func newFromReader(r io.Reader) (*VariantPixelBuffer, error) {
	hdr := make([]byte, snapshotHeaderLen)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrInvalidSnapshot, err)
	}
	if [4]byte(hdr[0:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidSnapshot)
	}
	if ver := binary.LittleEndian.Uint16(hdr[4:6]); ver != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, ver)
	}

	t := pixel.Type(hdr[6])
	shape := buffer.Shape{
		X: int(binary.LittleEndian.Uint32(hdr[8:12])),
		Y: int(binary.LittleEndian.Uint32(hdr[12:16])),
		Z: int(binary.LittleEndian.Uint32(hdr[16:20])),
		T: int(binary.LittleEndian.Uint32(hdr[20:24])),
		C: int(binary.LittleEndian.Uint32(hdr[24:28])),
	}

	v, err := New(t, shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create zstd reader: %w", ErrInvalidSnapshot, err)
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read payload: %w", ErrInvalidSnapshot, err)
	}
	if err := decodeRange(v, 0, v.Len(), payload, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return v, nil
}
