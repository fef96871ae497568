package markup

import "sort"

// Snapshots partitions a text into segments sharing the same set of covering
// attributes. Each segment gets a snapshot id; ids are numbered from 0 in
// text order, and a new id starts exactly where the set of covering
// attributes changes.
type Snapshots struct {
	starts []int         // start position of snapshot i
	active [][]Attribute // covering attributes of snapshot i
	bounds []int
}

func (s *Snapshots) build(n int, attrs []Attribute) {
	s.starts = s.starts[:0]
	s.active = s.active[:0]
	s.bounds = append(s.bounds[:0], 0)
	for _, a := range attrs {
		s.bounds = append(s.bounds, a.Range.Start, a.Range.End())
	}
	sort.Ints(s.bounds)
	var prev []Attribute
	for k, b := range s.bounds {
		if b >= n && n > 0 || k > 0 && b == s.bounds[k-1] {
			continue
		}
		var set []Attribute
		for _, a := range attrs {
			if a.Range.Contains(b) {
				set = append(set, a)
			}
		}
		if len(s.starts) > 0 && sameAttributes(set, prev) {
			continue
		}
		s.starts = append(s.starts, b)
		s.active = append(s.active, set)
		prev = set
	}
}

func sameAttributes(a, b []Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Count returns the number of snapshots. There is always at least one.
func (s *Snapshots) Count() int {
	return len(s.starts)
}

// SnapshotAt returns the id of the snapshot covering position pos.
func (s *Snapshots) SnapshotAt(pos int) int {
	id := sort.SearchInts(s.starts, pos+1) - 1
	if id < 0 {
		return 0
	}
	return id
}

// Start returns the position where snapshot id starts.
func (s *Snapshots) Start(id int) int {
	return s.starts[id]
}

// Active returns the attributes covering snapshot id.
func (s *Snapshots) Active(id int) []Attribute {
	if id < 0 || id >= len(s.active) {
		return nil
	}
	return s.active[id]
}
