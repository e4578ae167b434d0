package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes c to w as eight little-endian bytes.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]
	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64 writes the IEEE 754 representation of c to w.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteFloat64Slice writes a slice of float64 to w, preceded by its
// length as an uint64.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	var inc int64
	if inc, err = WriteUint64(w, uint64(len(c))); err != nil {
		return inc, fmt.Errorf("cannot WriteFloat64Slice: %w", err)
	}

	n += inc

	for i := range c {
		if inc, err = WriteFloat64(w, c[i]); err != nil {
			return n + inc, fmt.Errorf("cannot WriteFloat64Slice: %w", err)
		}
		n += inc
	}

	return
}
