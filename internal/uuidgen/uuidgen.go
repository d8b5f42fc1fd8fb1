// Package uuidgen generates batches of random (version 4) UUIDs.
package uuidgen

import (
	"strings"

	"github.com/google/uuid"
)

// MaxCount caps a single batch.
const MaxCount = 100

// Options controls batch size and formatting.
type Options struct {
	Count     int
	Uppercase bool
	NoDashes  bool
}

// Generate returns opts.Count UUIDs, with the count clamped to [1, MaxCount].
func Generate(opts Options) ([]string, error) {
	n := opts.Count
	if n < 1 {
		n = 1
	}
	if n > MaxCount {
		n = MaxCount
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, err
		}
		out = append(out, Format(id.String(), opts))
	}
	return out, nil
}

// Format applies the dash and case options to a canonical UUID string.
func Format(id string, opts Options) string {
	if opts.NoDashes {
		id = strings.ReplaceAll(id, "-", "")
	}
	if opts.Uppercase {
		id = strings.ToUpper(id)
	}
	return id
}
