package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads eight little-endian bytes from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadFloat64 reads the IEEE 754 representation of a float64 from r into c.
func ReadFloat64(r Reader, c *float64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var bits uint64
	if n, err = ReadUint64(r, &bits); err != nil {
		return
	}

	*c = math.Float64frombits(bits)

	return
}

// ReadFloat64Slice reads a length-prefixed slice of float64 from r and
// returns it.
func ReadFloat64Slice(r Reader) (c []float64, n int64, err error) {

	var size uint64
	if n, err = ReadUint64(r, &size); err != nil {
		return nil, n, fmt.Errorf("cannot ReadFloat64Slice: %w", err)
	}

	c = make([]float64, size)

	var inc int64
	for i := range c {
		if inc, err = ReadFloat64(r, &c[i]); err != nil {
			return nil, n + inc, fmt.Errorf("cannot ReadFloat64Slice: %w", err)
		}
		n += inc
	}

	return
}
