package pixelgo

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
	"github.com/hupe1980/pixelgo/plane"
)

// FormatReader is the surface a format decoder presents to the data model:
// it describes one image and produces its raw byte planes. Plane index p
// covers the contiguous linear sample range [p*X*Y, (p+1)*X*Y) in XYZTC
// storage order; a reader exposes Shape().Planes() planes.
//
// Tag parsing, decompression and everything else format-specific happens
// behind this interface, outside the data model.
type FormatReader interface {
	PixelType() pixel.Type
	Shape() buffer.Shape
	ByteOrder() binary.ByteOrder
	ReadPlane(ctx context.Context, index int) ([]byte, error)
}

// FormatWriter is the surface a format encoder presents to the data model:
// it consumes raw byte planes in the same indexing scheme as FormatReader.
type FormatWriter interface {
	PixelType() pixel.Type
	Shape() buffer.Shape
	ByteOrder() binary.ByteOrder
	WritePlane(ctx context.Context, index int, data []byte) error
}

// ReadVariant allocates a variant for the reader's pixel type and shape and
// populates it plane by plane. With WithParallelism(n) up to n planes are
// fetched and decoded concurrently; the variant is not visible to the caller
// until every plane has landed.
//
// Unpacked sample types decode in place without coordination because their
// planes occupy disjoint storage. Bit planes can share packed storage words
// at their boundaries, so their decodes are serialized; plane fetches still
// overlap.
//
// The first failing plane aborts the read and cancels outstanding planes.
func ReadVariant(ctx context.Context, r FormatReader, opts ...Option) (*VariantPixelBuffer, error) {
	o := applyOptions(opts)

	v, err := New(r.PixelType(), r.Shape())
	if err != nil {
		return nil, err
	}

	shape := v.Shape()
	planeLen := shape.PlaneLen()
	order := r.ByteOrder()

	// A decoded bit plane is a word read-modify-write against storage shared
	// with its neighbors whenever the plane length is not a multiple of 64.
	var storeMu *sync.Mutex
	if v.typ == pixel.Bit {
		storeMu = &sync.Mutex{}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for p := 0; p < shape.Planes(); p++ {
		p := p
		g.Go(func() error {
			start := time.Now()
			err := readPlane(gctx, r, v, p, planeLen, order, storeMu)
			o.metrics.RecordPlaneRead(time.Since(start), err)
			o.logger.LogPlaneRead(gctx, p, planeLen, err)
			if err != nil {
				return fmt.Errorf("plane %d: %w", p, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return v, nil
}

func readPlane(ctx context.Context, r FormatReader, v *VariantPixelBuffer, p, planeLen int, order binary.ByteOrder, storeMu *sync.Mutex) error {
	data, err := r.ReadPlane(ctx, p)
	if err != nil {
		return err
	}
	if storeMu != nil {
		storeMu.Lock()
		defer storeMu.Unlock()
	}
	return decodeRange(v, p*planeLen, planeLen, data, order)
}

// WriteVariant hands the variant's planes to a format writer. The writer's
// declared pixel type and shape must match the variant exactly; no implicit
// conversion is attempted (convert first if the target format needs another
// type).
func WriteVariant(ctx context.Context, w FormatWriter, v *VariantPixelBuffer, opts ...Option) error {
	o := applyOptions(opts)

	if w.PixelType() != v.PixelType() {
		return &TypeMismatchError{Want: w.PixelType(), Got: v.PixelType()}
	}
	if !w.Shape().Equal(v.Shape()) {
		return fmt.Errorf("%w: writer declares %s, variant holds %s", ErrInvalidShape, w.Shape(), v.Shape())
	}

	shape := v.Shape()
	planeLen := shape.PlaneLen()
	order := w.ByteOrder()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for p := 0; p < shape.Planes(); p++ {
		p := p
		g.Go(func() error {
			start := time.Now()
			err := writePlane(gctx, w, v, p, planeLen, order)
			o.metrics.RecordPlaneWrite(time.Since(start), err)
			o.logger.LogPlaneWrite(gctx, p, planeLen, err)
			if err != nil {
				return fmt.Errorf("plane %d: %w", p, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func writePlane(ctx context.Context, w FormatWriter, v *VariantPixelBuffer, p, planeLen int, order binary.ByteOrder) error {
	data, err := encodeRange(v, p*planeLen, planeLen, order)
	if err != nil {
		return err
	}
	return w.WritePlane(ctx, p, data)
}

// encodeRange is the byte-plane encoding arm of the dispatch table.
func encodeRange(v *VariantPixelBuffer, off, n int, order binary.ByteOrder) ([]byte, error) {
	switch v.typ {
	case pixel.Int8:
		return plane.EncodeRange(mustView[int8](v), off, n, order)
	case pixel.Int16:
		return plane.EncodeRange(mustView[int16](v), off, n, order)
	case pixel.Int32:
		return plane.EncodeRange(mustView[int32](v), off, n, order)
	case pixel.Int64:
		return plane.EncodeRange(mustView[int64](v), off, n, order)
	case pixel.Uint8:
		return plane.EncodeRange(mustView[uint8](v), off, n, order)
	case pixel.Uint16:
		return plane.EncodeRange(mustView[uint16](v), off, n, order)
	case pixel.Uint32:
		return plane.EncodeRange(mustView[uint32](v), off, n, order)
	case pixel.Uint64:
		return plane.EncodeRange(mustView[uint64](v), off, n, order)
	case pixel.Float32:
		return plane.EncodeRange(mustView[float32](v), off, n, order)
	case pixel.Float64:
		return plane.EncodeRange(mustView[float64](v), off, n, order)
	case pixel.Complex64:
		return plane.EncodeRange(mustView[complex64](v), off, n, order)
	case pixel.Complex128:
		return plane.EncodeRange(mustView[complex128](v), off, n, order)
	case pixel.Bit:
		return plane.EncodeRange(mustView[bool](v), off, n, order)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPixelType, v.typ)
	}
}

// decodeRange is the byte-plane decoding arm of the dispatch table.
func decodeRange(v *VariantPixelBuffer, off, n int, data []byte, order binary.ByteOrder) error {
	switch v.typ {
	case pixel.Int8:
		return plane.DecodeRange(data, order, mustView[int8](v), off, n)
	case pixel.Int16:
		return plane.DecodeRange(data, order, mustView[int16](v), off, n)
	case pixel.Int32:
		return plane.DecodeRange(data, order, mustView[int32](v), off, n)
	case pixel.Int64:
		return plane.DecodeRange(data, order, mustView[int64](v), off, n)
	case pixel.Uint8:
		return plane.DecodeRange(data, order, mustView[uint8](v), off, n)
	case pixel.Uint16:
		return plane.DecodeRange(data, order, mustView[uint16](v), off, n)
	case pixel.Uint32:
		return plane.DecodeRange(data, order, mustView[uint32](v), off, n)
	case pixel.Uint64:
		return plane.DecodeRange(data, order, mustView[uint64](v), off, n)
	case pixel.Float32:
		return plane.DecodeRange(data, order, mustView[float32](v), off, n)
	case pixel.Float64:
		return plane.DecodeRange(data, order, mustView[float64](v), off, n)
	case pixel.Complex64:
		return plane.DecodeRange(data, order, mustView[complex64](v), off, n)
	case pixel.Complex128:
		return plane.DecodeRange(data, order, mustView[complex128](v), off, n)
	case pixel.Bit:
		return plane.DecodeRange(data, order, mustView[bool](v), off, n)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPixelType, v.typ)
	}
}
