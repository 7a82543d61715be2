package testutil

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

// Result is the observable outcome of one operation.
//
// Value carries the returned element (or the length for OpLen); OK carries
// the presence flag. Operations without a result leave both zero.
type Result struct {
	Value int
	OK    bool
}

// Op is one list operation that can be applied to both sides of a [Harness].
type Op interface {
	ApplyReal(h *Harness) Result
	ApplyModel(h *Harness) Result
	String() string
}

// OpPush appends one value.
type OpPush struct {
	Value int
}

func (o OpPush) ApplyReal(h *Harness) Result {
	p := h.Real.PushBack(o.Value)

	return Result{Value: *p, OK: true}
}

func (o OpPush) ApplyModel(h *Harness) Result {
	h.Model.PushBack(o.Value)

	return Result{Value: o.Value, OK: true}
}

func (o OpPush) String() string { return fmt.Sprintf("push %d", o.Value) }

// OpExtend appends several values with a single Extend call.
type OpExtend struct {
	Values []int
}

func (o OpExtend) ApplyReal(h *Harness) Result {
	h.Real.ExtendSlice(o.Values)

	return Result{}
}

func (o OpExtend) ApplyModel(h *Harness) Result {
	h.Model.Extend(o.Values)

	return Result{}
}

func (o OpExtend) String() string { return fmt.Sprintf("extend %v", o.Values) }

// OpRemove removes the first occurrence of Value.
type OpRemove struct {
	Value int
}

func (o OpRemove) ApplyReal(h *Harness) Result {
	v, ok := h.Real.Remove(func(v int) bool { return v == o.Value })

	return Result{Value: v, OK: ok}
}

func (o OpRemove) ApplyModel(h *Harness) Result {
	v, ok := h.Model.Remove(func(v int) bool { return v == o.Value })

	return Result{Value: v, OK: ok}
}

func (o OpRemove) String() string { return fmt.Sprintf("remove %d", o.Value) }

// OpPopFront removes the first value.
type OpPopFront struct{}

func (OpPopFront) ApplyReal(h *Harness) Result {
	v, ok := h.Real.PopFront()

	return Result{Value: v, OK: ok}
}

func (OpPopFront) ApplyModel(h *Harness) Result {
	v, ok := h.Model.PopFront()

	return Result{Value: v, OK: ok}
}

func (OpPopFront) String() string { return "pop" }

// OpClear removes everything.
type OpClear struct{}

func (OpClear) ApplyReal(h *Harness) Result {
	h.Real.Clear()

	return Result{}
}

func (OpClear) ApplyModel(h *Harness) Result {
	h.Model.Clear()

	return Result{}
}

func (OpClear) String() string { return "clear" }

// OpLen queries the length.
type OpLen struct{}

func (OpLen) ApplyReal(h *Harness) Result {
	return Result{Value: h.Real.Len(), OK: !h.Real.IsEmpty()}
}

func (OpLen) ApplyModel(h *Harness) Result {
	return Result{Value: h.Model.Len(), OK: !h.Model.IsEmpty()}
}

func (OpLen) String() string { return "len" }

// OpFront queries the first value.
type OpFront struct{}

func (OpFront) ApplyReal(h *Harness) Result {
	v, ok := h.Real.Front()

	return Result{Value: v, OK: ok}
}

func (OpFront) ApplyModel(h *Harness) Result {
	v, ok := h.Model.Front()

	return Result{Value: v, OK: ok}
}

func (OpFront) String() string { return "front" }

// OpBack queries the last value.
type OpBack struct{}

func (OpBack) ApplyReal(h *Harness) Result {
	v, ok := h.Real.Back()

	return Result{Value: v, OK: ok}
}

func (OpBack) ApplyModel(h *Harness) Result {
	v, ok := h.Model.Back()

	return Result{Value: v, OK: ok}
}

func (OpBack) String() string { return "back" }

// OpContains queries membership of Value.
type OpContains struct {
	Value int
}

func (o OpContains) ApplyReal(h *Harness) Result {
	return Result{Value: o.Value, OK: oncelist.Contains(h.Real, o.Value)}
}

func (o OpContains) ApplyModel(h *Harness) Result {
	return Result{Value: o.Value, OK: h.Model.Contains(o.Value)}
}

func (o OpContains) String() string { return fmt.Sprintf("contains %d", o.Value) }

// CompareResults reports a mismatch between the model and the real result of op.
func CompareResults(op Op, modelRes, realRes Result) error {
	if diff := cmp.Diff(modelRes, realRes); diff != "" {
		return fmt.Errorf("%s: result mismatch (-model +real):\n%s", op.String(), diff)
	}

	return nil
}

// CompareState compares every observable of the real list against the model.
func CompareState(h *Harness, ops []string) error {
	want := h.Model.Snapshot()

	if diff := cmp.Diff(want, h.Real.Slice()); diff != "" {
		return fmt.Errorf("values mismatch (-model +real):\n%s\n%s", diff, FormatOps(ops))
	}

	if got := h.Real.Len(); got != len(want) {
		return fmt.Errorf("len mismatch: model=%d real=%d\n%s", len(want), got, FormatOps(ops))
	}

	if got := h.Real.IsEmpty(); got != (len(want) == 0) {
		return fmt.Errorf("is-empty mismatch: model=%v real=%v\n%s", len(want) == 0, got, FormatOps(ops))
	}

	if live := h.Alloc.Live(); live != int64(len(want)) {
		return fmt.Errorf("allocator balance: %d live nodes for %d values\n%s", live, len(want), FormatOps(ops))
	}

	return nil
}

// FormatOps formats the operation list for readability.
func FormatOps(ops []string) string {
	if len(ops) == 0 {
		return "Operations: (none)"
	}

	var b strings.Builder

	b.WriteString("Operations:")

	for i, op := range ops {
		b.WriteString("\n")

		if i == len(ops)-1 {
			b.WriteString("→ ")
			b.WriteString(op)
			b.WriteString("  ← divergence")
		} else {
			b.WriteString("  ")
			b.WriteString(op)
		}
	}

	return b.String()
}
