package core

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// DeepCopy returns a detached copy of v. The store hands out copies of what
// it holds so callers never share slices or embedded structs with stored
// state.
//
// On failure the zero value of T and a non-nil error are returned.
func DeepCopy[T any](v T) (T, error) {
	copied, ok := deepcopy.Copy(v).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("failed to copy value of type %T", v)
	}
	return copied, nil
}
