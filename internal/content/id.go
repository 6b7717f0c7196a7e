package content

import (
	"strconv"
	"time"
)

// newItemID derives a list-item id from the wall clock, as millisecond epoch
// digits. When the candidate collides with an id already present in the list
// (rapid successive adds within the same millisecond), the value is probed
// forward until it is unique within that list.
func newItemID(now time.Time, list Sequence) string {
	existing := make(map[string]struct{}, len(list))
	for _, elem := range list {
		if id, ok := ItemID(elem); ok {
			existing[id] = struct{}{}
		}
	}
	millis := now.UnixMilli()
	for {
		candidate := strconv.FormatInt(millis, 10)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		millis++
	}
}
