package cauchyrs

import "testing"

func TestNewRejectsOutOfRangeShardCounts(t *testing.T) {
	if _, err := New(0, 1); err != ErrInvalidDataShards {
		t.Fatalf("k=0: got %v, want ErrInvalidDataShards", err)
	}
	if _, err := New(MaxDataShards+1, 1); err != ErrInvalidDataShards {
		t.Fatalf("k too large: got %v, want ErrInvalidDataShards", err)
	}
	if _, err := New(1, 0); err != ErrInvalidParityShards {
		t.Fatalf("m=0: got %v, want ErrInvalidParityShards", err)
	}
	if _, err := New(1, MaxParityShards+1); err != ErrInvalidParityShards {
		t.Fatalf("m too large: got %v, want ErrInvalidParityShards", err)
	}
}

func TestNewSucceedsForEveryTabulatedPair(t *testing.T) {
	for k := 1; k <= MaxDataShards; k++ {
		for m := 1; m <= MaxParityShards; m++ {
			if _, err := New(k, m); err != nil {
				t.Fatalf("New(%d, %d): %v", k, m, err)
			}
		}
	}
}

func TestContextRoundTripsThroughSerialization(t *testing.T) {
	ctx, err := New(6, 3)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadContext(ctx.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if loaded.DataShards() != ctx.DataShards() || loaded.ParityShards() != ctx.ParityShards() || loaded.FieldWidth() != ctx.FieldWidth() {
		t.Fatal("loaded context parameters do not match original")
	}
	for i, b := range ctx.Bytes() {
		if loaded.Bytes()[i] != b {
			t.Fatalf("loaded context bytes differ at offset %d", i)
		}
	}
}

func TestLoadContextRejectsShortInput(t *testing.T) {
	if _, err := LoadContext([]byte{1, 2}); err != ErrShortContext {
		t.Fatalf("got %v, want ErrShortContext", err)
	}
}

func TestLoadContextRejectsWrongSize(t *testing.T) {
	ctx, err := New(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	truncated := ctx.Bytes()[:len(ctx.Bytes())-1]
	if _, err := LoadContext(truncated); err != ErrContextSize {
		t.Fatalf("got %v, want ErrContextSize", err)
	}
}

func TestLoadContextRejectsTamperedMatrix(t *testing.T) {
	ctx, err := New(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	raw := append([]byte(nil), ctx.Bytes()...)
	raw[3] ^= 1 // first bit of the matrix body, inside the checked identity block
	if _, err := LoadContext(raw); err != ErrNotRowZeroOptimized {
		t.Fatalf("got %v, want ErrNotRowZeroOptimized", err)
	}
}
