package iterate

import (
	"bufio"
	"io"
)

// LineIterator is a cursor over the lines of a reader, in the manner of
// [bufio.Scanner]: line terminators are stripped, and read errors surface
// through [LineIterator.Err] after the cursor reports exhaustion.
//
//	it := iterate.Lines(file)
//	for it.HasNext() {
//	    handle(it.Next())
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// A LineIterator is single-use and reads the underlying reader as it
// advances; it implements [Peeker] because it always holds one line of
// lookahead.
type LineIterator struct {
	scanner *bufio.Scanner
	pending string
	ok      bool
	err     error
}

// Lines returns a cursor over the lines of r.
//
// Lines longer than [bufio.Scanner]'s default buffer cause the cursor to stop
// early with [bufio.ErrTooLong] reported by Err; callers with unusual input
// should wrap their own Scanner and use [FromFunc] instead.
func Lines(r io.Reader) *LineIterator {
	it := &LineIterator{scanner: bufio.NewScanner(r)}
	it.advance()
	return it
}

func (it *LineIterator) advance() {
	if it.scanner == nil {
		it.ok = false
		return
	}
	if it.scanner.Scan() {
		it.pending = it.scanner.Text()
		it.ok = true
		return
	}
	it.err = it.scanner.Err()
	it.scanner = nil
	it.ok = false
}

// HasNext reports whether another line is available.
func (it *LineIterator) HasNext() bool { return it.ok }

// Next returns the next line (without its terminator) and advances.
// It panics with [ErrExhausted] when no line remains.
func (it *LineIterator) Next() string {
	if !it.ok {
		panic(ErrExhausted)
	}
	line := it.pending
	it.advance()
	return line
}

// Peek returns the upcoming line without advancing.
// It panics with [ErrExhausted] when no line remains.
func (it *LineIterator) Peek() string {
	if !it.ok {
		panic(ErrExhausted)
	}
	return it.pending
}

// Err returns the first read error encountered, if any. It is meaningful
// once HasNext has returned false; end of input is not an error.
func (it *LineIterator) Err() error { return it.err }
