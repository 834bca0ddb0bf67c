package argdef

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// MemStats counts the value buffers a context currently retains on
// behalf of its arguments. Destroy drops every tracked buffer, so a
// destroyed context always reads zero; tests use that to prove nothing
// leaks past destruction.
type MemStats struct {
	// Live is the number of retained values across all arguments.
	Live int
	// Bytes is the payload size of those values.
	Bytes int64
}

func (s MemStats) String() string {
	return fmt.Sprintf("%d values (%s)", s.Live, humanize.IBytes(uint64(s.Bytes)))
}
