package testutil

// SeedBuilder builds deterministic byte seeds for OpGenerator without
// hand-writing raw byte sequences.
//
// The builder encodes values according to OpGenerator's byte consumption
// order: one roll byte selecting the op, then the op's own bytes.
type SeedBuilder struct {
	cfg  OpGenConfig
	data []byte
}

// NewSeedBuilder creates a new builder for the given OpGenerator config.
func NewSeedBuilder(cfg *OpGenConfig) *SeedBuilder {
	if cfg == nil {
		panic("seed builder: cfg must not be nil")
	}

	return &SeedBuilder{cfg: *cfg}
}

// Bytes returns a copy of the built seed bytes.
func (b *SeedBuilder) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// Push appends bytes for a single push.
func (b *SeedBuilder) Push(v int) *SeedBuilder {
	b.roll(0)

	return b.emitValue(v)
}

// Extend appends bytes for an extend of 1 to 4 values.
func (b *SeedBuilder) Extend(values ...int) *SeedBuilder {
	if len(values) == 0 || len(values) > maxExtend {
		panic("seed builder: extend takes 1 to 4 values")
	}

	b.roll(b.cfg.PushRate)
	b.data = append(b.data, byte(len(values)-1))

	for _, v := range values {
		b.emitValue(v)
	}

	return b
}

// Remove appends bytes for removing the first v.
func (b *SeedBuilder) Remove(v int) *SeedBuilder {
	b.roll(b.cfg.PushRate + b.cfg.ExtendRate)

	return b.emitValue(v)
}

// Pop appends bytes for a PopFront.
func (b *SeedBuilder) Pop() *SeedBuilder {
	b.roll(b.cfg.PushRate + b.cfg.ExtendRate + b.cfg.RemoveRate)

	return b
}

// Clear appends bytes for a Clear.
func (b *SeedBuilder) Clear() *SeedBuilder {
	b.roll(b.cfg.PushRate + b.cfg.ExtendRate + b.cfg.RemoveRate + b.cfg.PopRate)

	return b
}

// Len appends bytes for a length query.
func (b *SeedBuilder) Len() *SeedBuilder { return b.query(0) }

// Front appends bytes for a Front query.
func (b *SeedBuilder) Front() *SeedBuilder { return b.query(1) }

// Back appends bytes for a Back query.
func (b *SeedBuilder) Back() *SeedBuilder { return b.query(2) }

// Contains appends bytes for a membership query.
func (b *SeedBuilder) Contains(v int) *SeedBuilder {
	b.query(3)

	return b.emitValue(v)
}

func (b *SeedBuilder) query(kind int) *SeedBuilder {
	b.roll(b.queryStart())
	b.data = append(b.data, byte(kind))

	return b
}

func (b *SeedBuilder) queryStart() int {
	c := b.cfg

	start := c.PushRate + c.ExtendRate + c.RemoveRate + c.PopRate + c.ClearRate
	if start >= 100 {
		panic("seed builder: config leaves no room for queries")
	}

	return start
}

// roll emits the byte selecting the op whose range starts at start.
func (b *SeedBuilder) roll(start int) {
	b.data = append(b.data, byte(start))
}

func (b *SeedBuilder) emitValue(v int) *SeedBuilder {
	if v < 0 || v >= ValueRange {
		panic("seed builder: value out of range")
	}

	b.data = append(b.data, byte(v))

	return b
}
