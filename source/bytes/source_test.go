package bytes

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

// TestSource_Load_ReturnsDefensiveCopy verifies that Load returns a copy of the data,
// not a reference to the internal slice.
func TestSource_Load_ReturnsDefensiveCopy(t *testing.T) {
	original := []byte("original data")
	src := New(original, &bytes.Buffer{})

	loaded, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	loaded[0] = 'X'

	loaded2, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if string(loaded2) != "original data" {
		t.Errorf("Source data was modified: got %q, want %q", string(loaded2), "original data")
	}
}

// TestFromString verifies the FromString convenience function.
func TestFromString(t *testing.T) {
	src := FromString("test data", nil)

	loaded, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if string(loaded) != "test data" {
		t.Errorf("Load() = %q, want %q", string(loaded), "test data")
	}
}

// TestSource_Load_CancelledContext verifies context cancellation is respected.
func TestSource_Load_CancelledContext(t *testing.T) {
	src := New([]byte("data"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want %v", err, context.Canceled)
	}
}

// TestSource_Save_AppendsNewline verifies the formatted text is written followed by a newline.
func TestSource_Save_AppendsNewline(t *testing.T) {
	var out bytes.Buffer
	src := New([]byte("ignored"), &out)

	if err := src.Save(context.Background(), []byte("{\n  \"a\": 1\n}")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if got, want := out.String(), "{\n  \"a\": 1\n}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSource_Save_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	src := New(nil, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := src.Save(ctx, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want %v", err, context.Canceled)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing written", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestSource_Save_WriteError(t *testing.T) {
	src := New(nil, failingWriter{})
	if err := src.Save(context.Background(), []byte("x")); err == nil {
		t.Error("Save() error = nil, want error")
	}
}

// TestSource_Type verifies the Type method.
func TestSource_Type(t *testing.T) {
	src := New([]byte("data"), nil)
	if got := src.Type(); got != "bytes" {
		t.Errorf("Type() = %q, want %q", got, "bytes")
	}
}
