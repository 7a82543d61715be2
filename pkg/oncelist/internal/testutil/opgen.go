package testutil

// ValueRange bounds generated values to [0, ValueRange). A small range makes
// duplicates, hits and misses for Remove and Contains all common.
const ValueRange = 16

// maxExtend bounds how many values one OpExtend carries.
const maxExtend = 4

// OpGenConfig configures the operation generator.
//
// Rates are percentages of a 0-99 roll; whatever the listed rates do not
// cover becomes query operations.
type OpGenConfig struct {
	// PushRate is the percentage of ops that push one value.
	PushRate int

	// ExtendRate is the percentage of ops that extend with several values.
	ExtendRate int

	// RemoveRate is the percentage of ops that remove by value.
	RemoveRate int

	// PopRate is the percentage of ops that pop the front.
	PopRate int

	// ClearRate is the percentage of ops that clear the list.
	ClearRate int
}

// DefaultOpGenConfig returns a configuration that grows lists while still
// removing often enough to exercise splices and tail invalidation.
func DefaultOpGenConfig() OpGenConfig {
	return OpGenConfig{
		PushRate:   35,
		ExtendRate: 15,
		RemoveRate: 15,
		PopRate:    10,
		ClearRate:  3,
	}
}

// queryKinds is the number of distinct query ops.
const queryKinds = 4

// OpGenerator generates deterministic operations from a byte stream.
type OpGenerator struct {
	stream *ByteStream
	config OpGenConfig
}

// NewOpGenerator creates a new operation generator.
func NewOpGenerator(fuzzBytes []byte, cfg *OpGenConfig) *OpGenerator {
	return &OpGenerator{
		stream: NewByteStream(fuzzBytes),
		config: *cfg,
	}
}

// HasMore reports whether more operations can be generated.
func (g *OpGenerator) HasMore() bool {
	return g.stream.HasMore()
}

// NextOp generates the next operation.
func (g *OpGenerator) NextOp() Op {
	choice := int(g.stream.NextByte()) % 100

	cumulative := 0

	cumulative += g.config.PushRate
	if choice < cumulative {
		return OpPush{Value: g.value()}
	}

	cumulative += g.config.ExtendRate
	if choice < cumulative {
		return g.genExtend()
	}

	cumulative += g.config.RemoveRate
	if choice < cumulative {
		return OpRemove{Value: g.value()}
	}

	cumulative += g.config.PopRate
	if choice < cumulative {
		return OpPopFront{}
	}

	cumulative += g.config.ClearRate
	if choice < cumulative {
		return OpClear{}
	}

	return g.genQuery()
}

func (g *OpGenerator) genExtend() Op {
	n := 1 + g.stream.NextInt(maxExtend)

	values := make([]int, n)
	for i := range values {
		values[i] = g.value()
	}

	return OpExtend{Values: values}
}

func (g *OpGenerator) genQuery() Op {
	switch g.stream.NextInt(queryKinds) {
	case 0:
		return OpLen{}
	case 1:
		return OpFront{}
	case 2:
		return OpBack{}
	default:
		return OpContains{Value: g.value()}
	}
}

func (g *OpGenerator) value() int {
	return g.stream.NextInt(ValueRange)
}
