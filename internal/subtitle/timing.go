package subtitle

import (
	"math"
	"strings"
)

// Every 4 characters count as one phoneme unit for time allocation.
const charsPerPhoneme = 4

// DefaultOptimizeThresholdMS is the gap below which OptimizeTiming snaps
// adjacent segments to a shared boundary.
const DefaultOptimizeThresholdMS = 1000

// SplitToWordSegments returns a new document with every segment re-cut into
// one segment per lexical token, time allocated proportionally to a coarse
// phoneme estimate. Segments that yield no tokens are dropped.
func (d *Document) SplitToWordSegments() *Document {
	var out []Segment
	for _, seg := range d.Segments {
		tokens := tokenize(seg.Text)
		if len(tokens) == 0 {
			continue
		}

		duration := seg.EndMS - seg.StartMS
		totalPhonemes := 0
		for _, tok := range tokens {
			totalPhonemes += phonemeCount(tok.runes)
		}
		if totalPhonemes < 1 {
			totalPhonemes = 1
		}
		timePerPhoneme := float64(duration) / float64(totalPhonemes)

		current := seg.StartMS
		for _, tok := range tokens {
			tokenDuration := int(math.Floor(timePerPhoneme * float64(phonemeCount(tok.runes))))
			end := current + tokenDuration
			if end > seg.EndMS {
				end = seg.EndMS
			}
			out = append(out, Segment{Text: tok.text, StartMS: current, EndMS: end})
			current = end
		}
	}
	return &Document{Segments: out}
}

func phonemeCount(runes int) int {
	return (runes + charsPerPhoneme - 1) / charsPerPhoneme
}

// RemovePunctuation returns a new document with trailing runs of full-width
// commas and ideographic stops stripped from each segment's trimmed
// original and translated texts.
func (d *Document) RemovePunctuation() *Document {
	segs := make([]Segment, len(d.Segments))
	for i, seg := range d.Segments {
		seg.Text = stripTrailingPunctuation(seg.Text)
		seg.TranslatedText = stripTrailingPunctuation(seg.TranslatedText)
		segs[i] = seg
	}
	return &Document{Segments: segs}
}

func stripTrailingPunctuation(text string) string {
	return strings.TrimRight(strings.TrimSpace(text), "，。")
}

// OptimizeTiming returns a new document where adjacent segments closer than
// thresholdMs are snapped to a shared boundary at the three-quarter point
// of the gap. Word-timestamped and empty documents come back unchanged.
// Each pair is evaluated against the boundary already assigned to its
// predecessor, not against the original timings.
func (d *Document) OptimizeTiming(thresholdMs int) *Document {
	segs := append([]Segment(nil), d.Segments...)
	if d.IsWordTimestamped() || len(segs) == 0 {
		return &Document{Segments: segs}
	}
	for i := 0; i < len(segs)-1; i++ {
		gap := segs[i+1].StartMS - segs[i].EndMS
		if gap < thresholdMs {
			// Floor division: overlapping segments have a negative gap and
			// the boundary must still land below the midpoint.
			boundary := floorDiv(segs[i].EndMS+segs[i+1].StartMS, 2) + floorDiv(gap, 4)
			segs[i].EndMS = boundary
			segs[i+1].StartMS = boundary
		}
	}
	return &Document{Segments: segs}
}

// floorDiv truncates toward negative infinity, unlike Go's native division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
