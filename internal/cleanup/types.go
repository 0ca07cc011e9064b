package cleanup

import "sort"

// Rule replaces every literal occurrence of From with To.
type Rule struct {
	From string
	To   string
}

// FileStats describes the changes made to one file.
type FileStats struct {
	Modified     bool
	Replacements map[string]int
	EmptyRemoved int // lyric lines emptied by replacement
	BlankRemoved int
}

// TreeStats aggregates a directory run.
type TreeStats struct {
	Total        int
	Modified     int
	Errors       int
	Replacements map[string]int
	EmptyRemoved int
}

func (s *TreeStats) add(f FileStats) {
	if s.Replacements == nil {
		s.Replacements = make(map[string]int)
	}
	for k, v := range f.Replacements {
		s.Replacements[k] += v
	}
	s.EmptyRemoved += f.EmptyRemoved
	if f.Modified {
		s.Modified++
	}
}

// Count is one replacement key and how often it fired.
type Count struct {
	Key   string
	Count int
}

// SortedReplacements returns the non-zero counts, most frequent first.
func (s TreeStats) SortedReplacements() []Count {
	counts := make([]Count, 0, len(s.Replacements))
	for k, v := range s.Replacements {
		if v > 0 {
			counts = append(counts, Count{Key: k, Count: v})
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	return counts
}
