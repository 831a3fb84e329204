package mapper

import (
	"strings"
	"time"
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ulidTime reads the millisecond timestamp embedded in a 26 character ULID
func ulidTime(id string) (time.Time, bool) {
	if len(id) != 26 {
		return time.Time{}, false
	}
	var ms uint64
	for _, c := range strings.ToUpper(id[:10]) {
		i := strings.IndexRune(crockford, c)
		if i < 0 {
			return time.Time{}, false
		}
		ms = ms<<5 | uint64(i)
	}
	if ms > 1<<48-1 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}
