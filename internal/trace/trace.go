// Package trace provides cpu.TraceSink implementations: a fixed-size ring
// for post-mortem dumps and a line-oriented writer for -trace output.
package trace

import (
	"fmt"
	"io"

	"github.com/go-gameboy/sm83core/internal/cpu"
)

// RingSink retains the last N records and discards older ones, for
// printing a trailing window of execution when a test run fails.
type RingSink struct {
	buf   []cpu.Record
	idx   int
	fill  int
}

// NewRingSink allocates a ring holding up to size records. size<=0 is
// treated as 1.
func NewRingSink(size int) *RingSink {
	if size <= 0 {
		size = 1
	}
	return &RingSink{buf: make([]cpu.Record, size)}
}

func (r *RingSink) Write(rec cpu.Record) error {
	r.buf[r.idx] = rec
	r.idx = (r.idx + 1) % len(r.buf)
	if r.fill < len(r.buf) {
		r.fill++
	}
	return nil
}

// Recent returns the retained records in chronological order, oldest first.
func (r *RingSink) Recent() []cpu.Record {
	out := make([]cpu.Record, r.fill)
	start := (r.idx - r.fill + len(r.buf)) % len(r.buf)
	for i := 0; i < r.fill; i++ {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}

// WriterSink formats each record as one line and writes it to w, in the
// same field layout cpurunner's -trace flag prints.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(rec cpu.Record) error {
	_, err := fmt.Fprintf(s.w,
		"n=%d PC=%04X SP=%04X A=%02X Z=%t N=%t H=%t C=%t BC=%04X DE=%04X HL=%04X IME=%t IF=%02X IE=%02X HALT=%t\n",
		rec.ExeCounter, rec.PC, rec.SP, rec.A, rec.Z, rec.N, rec.H, rec.C,
		rec.BC, rec.DE, rec.HL, rec.IME, rec.IF, rec.IE, rec.HALT)
	return err
}

// MultiSink fans a record out to every child sink, stopping at the first
// error.
type MultiSink struct {
	sinks []cpu.TraceSink
}

func NewMultiSink(sinks ...cpu.TraceSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Write(rec cpu.Record) error {
	for _, s := range m.sinks {
		if err := s.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
