package iterx

import (
	"iter"
)

// Collect drains seq into a slice, stopping at the first error. Values
// yielded before the error are returned along with it.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
