package parser

import (
	"bufio"
	"io"
)

// lineWindowReader passes through only the physical lines numbered
// from..to (1-based, inclusive; to == 0 means until EOF). Lines outside the
// window never reach the CSV reader.
type lineWindowReader struct {
	br      *bufio.Reader
	from    int
	to      int
	line    int
	pending []byte
	err     error
}

func newLineWindowReader(r io.Reader, from, to int) io.Reader {
	if from <= 1 && to == 0 {
		return r
	}
	return &lineWindowReader{br: bufio.NewReader(r), from: from, to: to}
}

func (w *lineWindowReader) Read(p []byte) (int, error) {
	for len(w.pending) == 0 {
		if w.err != nil {
			return 0, w.err
		}
		w.fill()
	}

	n := copy(p, w.pending)
	w.pending = w.pending[n:]
	return n, nil
}

// fill loads the next in-window line into pending, or records the error
// that ends the stream.
func (w *lineWindowReader) fill() {
	if w.to > 0 && w.line >= w.to {
		w.err = io.EOF
		return
	}

	data, err := w.br.ReadBytes('\n')
	if len(data) > 0 {
		w.line++
		if w.line >= w.from {
			w.pending = data
		}
	}
	if err != nil {
		w.err = err
	}
}

