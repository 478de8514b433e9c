package memo

import "fmt"

// Info is a point-in-time snapshot of a wrapper's accounting: cumulative
// hit and miss counters plus the configured bound and current occupancy
// of the underlying cache. Snapshots are plain values; a later call
// never mutates an Info already handed out.
type Info struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	MaxSize int   `json:"max_size"`
	Size    int   `json:"current_size"`
}

// HitRate returns hits / (hits + misses), or 0 before the first call.
func (i Info) HitRate() float64 {
	total := i.Hits + i.Misses
	if total == 0 {
		return 0
	}
	return float64(i.Hits) / float64(total)
}

// String renders the snapshot in a compact single-line form.
func (i Info) String() string {
	return fmt.Sprintf("hits=%d misses=%d max_size=%d current_size=%d",
		i.Hits, i.Misses, i.MaxSize, i.Size)
}
