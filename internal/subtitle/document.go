package subtitle

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document is one subtitle track: segments kept sorted ascending by start
// time. Segments with empty trimmed text are never retained.
type Document struct {
	Segments []Segment
}

// New builds a Document from segs, dropping segments whose trimmed text is
// empty and stable-sorting the rest by start time.
func New(segs []Segment) *Document {
	filtered := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		if strings.TrimSpace(seg.Text) != "" {
			filtered = append(filtered, seg)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].StartMS < filtered[j].StartMS
	})
	return &Document{Segments: filtered}
}

// Len returns the number of segments.
func (d *Document) Len() int {
	return len(d.Segments)
}

// HasData reports whether the track holds any segments.
func (d *Document) HasData() bool {
	return len(d.Segments) > 0
}

// IsWordTimestamped reports whether the track looks word-level rather than
// utterance-level: at least 80% of segments are either a single ASCII token
// or at most two characters long (one ideograph, possibly with a trailing
// mark). An empty track is never word-level.
func (d *Document) IsWordTimestamped() bool {
	if len(d.Segments) == 0 {
		return false
	}
	valid := 0
	for _, seg := range d.Segments {
		text := strings.TrimSpace(seg.Text)
		if (len(strings.Fields(text)) == 1 && isASCII(text)) ||
			utf8.RuneCountInString(text) <= 2 {
			valid++
		}
	}
	return float64(valid)/float64(len(d.Segments)) >= 0.8
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// MergeSegments returns a new document with the inclusive index range
// [start, end] collapsed into a single segment spanning the range. A
// non-empty mergedText overrides the default separator-less concatenation
// of the range's original texts; the empty string is the no-override
// sentinel, so a merged segment cannot be given deliberately empty text.
// The merged segment carries no translated text.
func (d *Document) MergeSegments(start, end int, mergedText string) (*Document, error) {
	if start < 0 || end >= len(d.Segments) || start > end {
		return nil, fmt.Errorf(
			"%w: merge [%d, %d] with %d segments",
			ErrInvalidRange, start, end, len(d.Segments),
		)
	}
	text := mergedText
	if text == "" {
		var sb strings.Builder
		for _, seg := range d.Segments[start : end+1] {
			sb.WriteString(seg.Text)
		}
		text = sb.String()
	}
	merged := Segment{
		Text:    text,
		StartMS: d.Segments[start].StartMS,
		EndMS:   d.Segments[end].EndMS,
	}
	out := make([]Segment, 0, len(d.Segments)-(end-start))
	out = append(out, d.Segments[:start]...)
	out = append(out, merged)
	out = append(out, d.Segments[end+1:]...)
	return &Document{Segments: out}, nil
}

// MergeWithNext returns a new document with segment index joined to its
// successor, texts separated by a single space. Translated text does not
// survive the merge.
func (d *Document) MergeWithNext(index int) (*Document, error) {
	if index < 0 || index >= len(d.Segments)-1 {
		return nil, fmt.Errorf(
			"%w: merge %d with next of %d segments",
			ErrInvalidRange, index, len(d.Segments),
		)
	}
	current := d.Segments[index]
	next := d.Segments[index+1]
	merged := Segment{
		Text:    current.Text + " " + next.Text,
		StartMS: current.StartMS,
		EndMS:   next.EndMS,
	}
	out := make([]Segment, 0, len(d.Segments)-1)
	out = append(out, d.Segments[:index]...)
	out = append(out, merged)
	out = append(out, d.Segments[index+2:]...)
	return &Document{Segments: out}, nil
}

// Transcript renders the track as plain text, one segment per line.
func (d *Document) Transcript() string {
	return d.ToTxt(LayoutOriginalTop)
}
