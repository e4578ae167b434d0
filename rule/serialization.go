package rule

import (
	"bufio"
	"fmt"
	"io"

	"github.com/numkit/quadrature/utils/buffer"
)

// BinarySize returns the serialized size of the rule in bytes.
func (r *Rule) BinarySize() int {
	return 8 + 8 + len(r.Points)*8 + 8 + len(r.Weights)*8
}

// WriteTo writes the rule on w. It implements the io.WriterTo interface
// and writes exactly r.BinarySize() bytes.
//
// Unless w implements the buffer.Writer interface, it will be wrapped
// into a bufio.Writer. Since this requires allocations, it is
// preferable to pass a buffer.Writer directly.
func (r *Rule) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint64(w, uint64(r.Degree)); err != nil {
			return n + inc, fmt.Errorf("cannot WriteTo: %w", err)
		}
		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, r.Points); err != nil {
			return n + inc, fmt.Errorf("cannot WriteTo: %w", err)
		}
		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, r.Weights); err != nil {
			return n + inc, fmt.Errorf("cannot WriteTo: %w", err)
		}
		n += inc

		return n, w.Flush()

	default:
		bw := bufio.NewWriter(w)
		if n, err = r.WriteTo(bw); err != nil {
			return
		}
		return n, bw.Flush()
	}
}

// ReadFrom reads the rule from r. It implements the io.ReaderFrom
// interface.
//
// Unless rd implements the buffer.Reader interface, it will be wrapped
// into a bufio.Reader.
func (r *Rule) ReadFrom(rd io.Reader) (n int64, err error) {

	switch rd := rd.(type) {
	case buffer.Reader:

		var inc int64
		var degree uint64

		if inc, err = buffer.ReadUint64(rd, &degree); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: %w", err)
		}
		n += inc
		r.Degree = int(degree)

		if r.Points, inc, err = buffer.ReadFloat64Slice(rd); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: %w", err)
		}
		n += inc

		if r.Weights, inc, err = buffer.ReadFloat64Slice(rd); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: %w", err)
		}
		n += inc

		if len(r.Points) != len(r.Weights) {
			return n, fmt.Errorf("cannot ReadFrom: %d points but %d weights", len(r.Points), len(r.Weights))
		}

		return

	default:
		return r.ReadFrom(bufio.NewReader(rd))
	}
}

// BinarySize returns the serialized size of the pair in bytes.
func (p *Pair) BinarySize() int {
	return 8 + p.Kronrod.BinarySize() + p.Gauss.BinarySize()
}

// WriteTo writes the pair on w. It implements the io.WriterTo
// interface.
func (p *Pair) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint64(w, uint64(p.Order)); err != nil {
			return n + inc, fmt.Errorf("cannot WriteTo: %w", err)
		}
		n += inc

		if inc, err = p.Kronrod.WriteTo(w); err != nil {
			return n + inc, err
		}
		n += inc

		if inc, err = p.Gauss.WriteTo(w); err != nil {
			return n + inc, err
		}
		n += inc

		return n, w.Flush()

	default:
		bw := bufio.NewWriter(w)
		if n, err = p.WriteTo(bw); err != nil {
			return
		}
		return n, bw.Flush()
	}
}

// ReadFrom reads the pair from r. It implements the io.ReaderFrom
// interface.
func (p *Pair) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var order uint64

		if inc, err = buffer.ReadUint64(r, &order); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: %w", err)
		}
		n += inc
		p.Order = int(order)

		p.Kronrod = new(Rule)
		if inc, err = p.Kronrod.ReadFrom(r); err != nil {
			return n + inc, err
		}
		n += inc

		p.Gauss = new(Rule)
		if inc, err = p.Gauss.ReadFrom(r); err != nil {
			return n + inc, err
		}
		n += inc

		if p.Kronrod.Len() != 2*p.Order+1 || p.Gauss.Len() != p.Order {
			return n, fmt.Errorf("cannot ReadFrom: rule sizes (%d, %d) inconsistent with order %d", p.Kronrod.Len(), p.Gauss.Len(), p.Order)
		}

		return

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}
