package cauchyrs

// Context is the serialized, immutable encoding artifact produced by
// New(k, m) (spec §3 "Encoding context", §6.2 create). It embeds the
// field width w, the shard counts k and m, and the bit-expanded generator
// matrix B. A Context is safe to share across concurrent Encode calls on
// disjoint shard buffers (spec §5) — it carries no mutable state.
type Context struct {
	w, k, m int
	enc     bitMatrix
	raw     []byte
}

// DataShards, ParityShards and FieldWidth expose the parameters a Context
// was built for.
func (c *Context) DataShards() int   { return c.k }
func (c *Context) ParityShards() int { return c.m }
func (c *Context) FieldWidth() int   { return c.w }

// Bytes returns the serialized context: [w, k, m, B...], one byte per bit
// of B, exactly as spec §3/§6.2 describe. The returned slice must not be
// modified.
func (c *Context) Bytes() []byte { return c.raw }

// New builds an encoding context for k data shards and m parity shards
// (spec §6.2 create). It runs the field-table, matrix, and bit-matrix
// expansion pipeline once; the result can be reused for any number of
// subsequent Encode calls.
func New(k, m int) (*Context, error) {
	if k < 1 || k > MaxDataShards {
		return nil, ErrInvalidDataShards
	}
	if m < 1 || m > MaxParityShards {
		return nil, ErrInvalidParityShards
	}

	p := lookupParams(k, m)
	tables := buildFieldTables(p.w, p.p)

	gen, bitCount := buildMatrix(tables, k, m, p.x, p.y)
	if bitCount != p.b {
		panic("cauchyrs: generator matrix bit-weight does not match the tabulated parameter (parameter table bug)")
	}

	enc := expandMatrix(tables, gen)
	if !isRowZeroOptimized(enc, p.w, k) {
		panic("cauchyrs: newly built context fails the row-0-optimized predicate (parameter table bug)")
	}

	raw := serializeContext(p.w, k, m, enc)
	return &Context{w: p.w, k: k, m: m, enc: enc, raw: raw}, nil
}

// serializeContext lays out [w, k, m, B...] as spec §3 describes: one byte
// per bit of B, row-major.
func serializeContext(w, k, m int, enc bitMatrix) []byte {
	raw := make([]byte, 3+len(enc.data))
	raw[0] = byte(w)
	raw[1] = byte(k)
	raw[2] = byte(m)
	copy(raw[3:], enc.data)
	return raw
}

// LoadContext parses a previously-serialized Context (spec §6.2/§6.4:
// contexts are produced and consumed by the same implementation, with no
// format version). It validates the declared length against (w, k, m) and
// re-checks the row-0-optimized predicate before trusting the bytes.
func LoadContext(data []byte) (*Context, error) {
	if len(data) < 3 {
		return nil, ErrShortContext
	}
	w := int(data[0])
	k := int(data[1])
	m := int(data[2])

	want := 3 + k*w*m*w
	if len(data) != want {
		return nil, ErrContextSize
	}

	enc := bitMatrix{rows: m * w, cols: k * w, data: append([]byte(nil), data[3:]...)}
	if !isRowZeroOptimized(enc, w, k) {
		return nil, ErrNotRowZeroOptimized
	}

	raw := append([]byte(nil), data...)
	return &Context{w: w, k: k, m: m, enc: enc, raw: raw}, nil
}
