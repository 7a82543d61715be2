package oncelist

import (
	"fmt"
	"reflect"
)

// Any is a value tagged with the exact static type it was created with.
//
// Tags are compared by identity: a value pushed as *bytes.Buffer is not found
// as io.Reader, and a value pushed as io.Reader is not found as
// *bytes.Buffer.
type Any struct {
	typ reflect.Type
	ptr any // *W where typ == reflect.TypeFor[W]()
}

// AnyOf tags v with W.
func AnyOf[W any](v W) Any {
	p := new(W)
	*p = v

	return Any{typ: reflect.TypeFor[W](), ptr: p}
}

// Type returns the tag, or nil for the zero Any.
func (a Any) Type() reflect.Type { return a.typ }

// Value returns a copy of the tagged value, or nil for the zero Any.
func (a Any) Value() any {
	if a.ptr == nil {
		return nil
	}

	return reflect.ValueOf(a.ptr).Elem().Interface()
}

// String formats the tagged value.
func (a Any) String() string {
	return fmt.Sprint(a.Value())
}

// AnyIs reports whether a was tagged with W.
func AnyIs[W any](a Any) bool {
	return a.typ == reflect.TypeFor[W]()
}

// AnyAs returns a pointer to the value if a was tagged with W.
func AnyAs[W any](a Any) (*W, bool) {
	if !AnyIs[W](a) {
		return nil, false
	}

	return unbox[W](a), true
}

// unbox downcasts a value whose tag already matched W.
func unbox[W any](a Any) *W {
	p, ok := a.ptr.(*W)
	if !ok {
		invariant("value tagged %s holds %T", a.typ, a.ptr)
	}

	return p
}

// AnyList is a list of type-tagged values.
type AnyList = List[Any]

// NewAny returns an empty [AnyList].
//
// Returns [ErrInvalidInput] for invalid opts.
func NewAny(opts Options) (*AnyList, error) {
	return New[Any](opts)
}

// PushAny appends v tagged with W and returns a pointer to the stored value.
//
// Safe for concurrent use under [oncecell.Shared].
func PushAny[W any](l *AnyList, v W) *W {
	a := AnyOf(v)
	l.PushBack(a)

	return unbox[W](a)
}

// FindByType returns the first value that was pushed with tag W.
func FindByType[W any](l *AnyList) (*W, bool) {
	for a := range l.All() {
		if AnyIs[W](a) {
			return unbox[W](a), true
		}
	}

	return nil, false
}

// RemoveByType removes the first value that was pushed with tag W and
// returns it.
//
// Requires exclusive access.
func RemoveByType[W any](l *AnyList) (W, bool) {
	return RemoveAs(l, func(a *Any) (W, bool) {
		if !AnyIs[W](*a) {
			var zero W

			return zero, false
		}

		return *unbox[W](*a), true
	})
}
