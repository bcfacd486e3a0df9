package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gameboy/sm83core/internal/cpu"
)

func TestRingSink_RetainsOnlyLastN(t *testing.T) {
	r := NewRingSink(3)
	for i := uint64(0); i < 5; i++ {
		r.Write(cpu.Record{ExeCounter: i})
	}
	got := r.Recent()
	if len(got) != 3 {
		t.Fatalf("len(Recent()) = %d, want 3", len(got))
	}
	want := []uint64{2, 3, 4}
	for i, rec := range got {
		if rec.ExeCounter != want[i] {
			t.Fatalf("Recent()[%d].ExeCounter = %d, want %d", i, rec.ExeCounter, want[i])
		}
	}
}

func TestRingSink_FewerThanCapacity(t *testing.T) {
	r := NewRingSink(10)
	r.Write(cpu.Record{ExeCounter: 1})
	r.Write(cpu.Record{ExeCounter: 2})
	got := r.Recent()
	if len(got) != 2 || got[0].ExeCounter != 1 || got[1].ExeCounter != 2 {
		t.Fatalf("Recent() = %+v, want [1,2]", got)
	}
}

func TestWriterSink_FormatsOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	s.Write(cpu.Record{PC: 0x0100, A: 0x42, Z: true})
	out := buf.String()
	if !strings.Contains(out, "PC=0100") || !strings.Contains(out, "A=42") {
		t.Fatalf("unexpected trace line: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", out)
	}
}

func TestMultiSink_FansOutToAllChildren(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMultiSink(NewWriterSink(&a), NewWriterSink(&b))
	m.Write(cpu.Record{PC: 0x1234})
	if a.String() != b.String() || a.Len() == 0 {
		t.Fatalf("both sinks should have received the same record")
	}
}
