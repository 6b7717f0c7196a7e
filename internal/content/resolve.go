package content

import (
	"strconv"
	"strings"
)

// Resolve walks a dotted path from root and returns the addressed node.
// Sequence segments match an item id first and fall back to a zero-based
// positional index; mapping segments are plain key lookups. The input tree is
// never modified. A null scalar is a valid resolved value.
func Resolve(root Value, path string) (Value, bool) {
	current := root
	for _, segment := range strings.Split(path, ".") {
		switch typed := current.(type) {
		case Sequence:
			idx, ok := findSequenceIndex(typed, segment)
			if !ok {
				return nil, false
			}
			current = typed[idx]
		case Mapping:
			next, ok := typed[segment]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

// findSequenceIndex locates a sequence element by item id, then by numeric
// position.
func findSequenceIndex(seq Sequence, segment string) (int, bool) {
	for i, elem := range seq {
		if id, ok := ItemID(elem); ok && id == segment {
			return i, true
		}
	}
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 || idx >= len(seq) {
		return 0, false
	}
	return idx, true
}
