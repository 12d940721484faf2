package disk

import (
	"errors"
	"fmt"

	"github.com/downfa11-org/diskcompact/pkg/types"
)

var ErrMalformedInput = errors.New("malformed input")

// Parse decodes a run-length disk map. Even-indexed digits are file lengths
// (identities 0, 1, 2, ... in order), odd-indexed digits are free lengths.
// A zero-length file consumes an identity but produces no segment.
func Parse(encoded string) (*Medium, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty disk map", ErrMalformedInput)
	}

	m := &Medium{
		Occupied: make([]types.OccupiedSegment, 0, (len(encoded)+1)/2),
		Free:     make([]types.FreeSegment, 0, len(encoded)/2),
	}

	pos := 0
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: non-digit %q at index %d", ErrMalformedInput, c, i)
		}
		length := int(c - '0')

		if i%2 == 0 {
			id := m.Files
			m.Files++
			if length > 0 {
				m.Occupied = append(m.Occupied, types.OccupiedSegment{ID: id, Start: pos, Length: length})
			}
		} else if length > 0 {
			m.Free = append(m.Free, types.FreeSegment{Start: pos, Length: length})
		}
		pos += length
	}

	m.Total = pos
	return m, nil
}
