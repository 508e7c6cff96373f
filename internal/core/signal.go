package core

import (
	"fmt"
	"reflect"
)

// Catch runs fn and intercepts a thrown Signal carrying tag. It reports
// whether such a signal was caught. Panics that are not a matching *Signal
// keep unwinding.
func Catch(tag any, fn func()) (caught bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if sig, ok := r.(*Signal); ok && sig.Is(tag) {
			caught = true

			return
		}

		panic(r)
	}()

	fn()

	return false
}

// Throw unwinds the stack with a Signal carrying tag, up to the nearest
// Catch for the same tag.
func Throw(tag any) {
	panic(&Signal{Tag: tag})
}

// Signal is a non-error control transfer carrying an opaque tag. It travels
// as a panic payload and is intercepted with Catch.
type Signal struct {
	Tag any
}

// Is reports whether the signal carries tag.
func (s *Signal) Is(tag any) bool {
	return reflect.DeepEqual(s.Tag, tag)
}

func (s *Signal) String() string {
	return fmt.Sprintf("uncaught signal %v", s.Tag)
}
