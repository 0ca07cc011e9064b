package subtitle

// SynthesizeEnds returns a copy of entries where every missing end time is
// derived from the next entry's start, floored at t.MinDuration. The last
// entry gets t.DefaultDuration.
func SynthesizeEnds(entries []Entry, t Timing) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	for i := range out {
		if out[i].End != nil {
			continue
		}

		duration := t.DefaultDuration
		if i+1 < len(out) {
			duration = max(out[i+1].Start.Sub(out[i].Start), t.MinDuration)
		}

		end := out[i].Start.Add(duration)
		out[i].End = &end
	}

	return out
}
