package graphio

import (
	"bytes"
	"fmt"
	"testing"
)

func TestDotWriter(t *testing.T) {
	var buf bytes.Buffer
	d := NewDotWriter(&buf)

	if err := d.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := d.Edge("app", "liba.so"); err != nil {
		t.Fatal(err)
	}
	if err := d.ExcludedEdge("app", "ld-linux.so.2"); err != nil {
		t.Fatal(err)
	}
	if err := d.Edge("liba.so", "libc.so.6"); err != nil {
		t.Fatal(err)
	}
	if err := d.End(); err != nil {
		t.Fatal(err)
	}

	want := `digraph {
  "app" -> "liba.so";
  "ld-linux.so.2" [color="gray" fontcolor="gray"];
  "app" -> "ld-linux.so.2" [color="gray" fontcolor="gray"];
  "liba.so" -> "libc.so.6";
}
`
	if got := buf.String(); got != want {
		t.Errorf("dot output = %q, want %q", got, want)
	}
}

func TestDotWriterEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	d := NewDotWriter(&buf)
	if err := d.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := d.End(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "digraph {\n}\n" {
		t.Errorf("dot output = %q", got)
	}
}

// failWriter fails every write after the first n bytes.
type failWriter struct{ budget int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.budget <= 0 {
		return 0, fmt.Errorf("write refused")
	}
	f.budget -= len(p)
	return len(p), nil
}

func TestDotWriterStickyError(t *testing.T) {
	d := NewDotWriter(&failWriter{budget: len("digraph {\n")})

	if err := d.Begin(); err != nil {
		t.Fatalf("Begin should fit the budget: %v", err)
	}
	if err := d.Edge("a", "b"); err == nil {
		t.Fatal("expected write failure")
	}
	if err := d.End(); err == nil {
		t.Fatal("error must stick for later calls")
	}
	if d.Err() == nil {
		t.Fatal("Err should report the failure")
	}
}
