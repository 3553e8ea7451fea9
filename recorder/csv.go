package recorder

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSV writes one line per time level: n, t, then U[n, 0..N−1]. The header
// carries the x coordinates rounded to Decimals.
type CSV struct {
	Decimals int

	w      *csv.Writer
	closer io.Closer
	n      int
}

// NewCSV writes to w. If w is an io.Closer, Close closes it.
func NewCSV(w io.Writer) *CSV {
	c := &CSV{Decimals: 4, w: csv.NewWriter(w), n: -1}
	if cl, ok := w.(io.Closer); ok {
		c.closer = cl
	}

	return c
}

// Begin writes the header.
func (c *CSV) Begin(run RunInfo) error {
	header := make([]string, 0, len(run.X)+2)
	header = append(header, "n", "t")
	for _, x := range run.X {
		header = append(header, strconv.FormatFloat(x, 'f', c.Decimals, 64))
	}
	c.n = len(run.X)

	return c.w.Write(header)
}

// WriteRow writes one level at full precision.
func (c *CSV) WriteRow(n int, t float64, row []float64) error {
	if c.n < 0 {
		return ErrNotStarted
	}
	if len(row) != c.n {
		return fmt.Errorf("%w: got %d, want %d", ErrRowLength, len(row), c.n)
	}
	rec := make([]string, 0, len(row)+2)
	rec = append(rec, strconv.Itoa(n), strconv.FormatFloat(t, 'g', -1, 64))
	for _, u := range row {
		rec = append(rec, strconv.FormatFloat(u, 'g', -1, 64))
	}

	return c.w.Write(rec)
}

// Finish flushes buffered lines.
func (c *CSV) Finish(string) error {
	if c.n < 0 {
		return ErrNotStarted
	}
	c.w.Flush()

	return c.w.Error()
}

// Close flushes and closes the underlying writer when it is closable.
func (c *CSV) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return err
	}
	if c.closer != nil {
		return c.closer.Close()
	}

	return nil
}
