package subtitle

import (
	"errors"
	"testing"
)

func TestNewFiltersAndSorts(t *testing.T) {
	doc := New([]Segment{
		NewSegment("third", 2000, 3000),
		NewSegment("  ", 500, 600),
		NewSegment("first", 0, 1000),
		NewSegment("", 100, 200),
		NewSegment("second", 1000, 2000),
	})

	if doc.Len() != 3 {
		t.Fatalf("expected 3 segments, got %d", doc.Len())
	}
	want := []string{"first", "second", "third"}
	for i, seg := range doc.Segments {
		if seg.Text != want[i] {
			t.Errorf("segment %d: got %q, want %q", i, seg.Text, want[i])
		}
	}
	for i := 1; i < doc.Len(); i++ {
		if doc.Segments[i-1].StartMS > doc.Segments[i].StartMS {
			t.Errorf("segments not sorted at index %d", i)
		}
	}
}

func TestNewStableSortKeepsTieOrder(t *testing.T) {
	doc := New([]Segment{
		NewSegment("a", 1000, 1100),
		NewSegment("b", 1000, 1200),
		NewSegment("c", 0, 500),
	})
	if doc.Segments[1].Text != "a" || doc.Segments[2].Text != "b" {
		t.Errorf("tie order not preserved: got %q then %q",
			doc.Segments[1].Text, doc.Segments[2].Text)
	}
}

func TestHasData(t *testing.T) {
	if New(nil).HasData() {
		t.Error("empty document should have no data")
	}
	if !New([]Segment{NewSegment("x", 0, 1)}).HasData() {
		t.Error("non-empty document should have data")
	}
}

func TestIsWordTimestamped(t *testing.T) {
	words := make([]Segment, 10)
	for i := range words {
		words[i] = NewSegment("word", i*1000, i*1000+500)
	}
	if !New(words).IsWordTimestamped() {
		t.Error("ten single-token segments should be word timestamped")
	}

	sentences := make([]Segment, 10)
	for i := range sentences {
		sentences[i] = NewSegment("this is a full sentence", i*1000, i*1000+500)
	}
	if New(sentences).IsWordTimestamped() {
		t.Error("ten sentence segments should not be word timestamped")
	}

	if New(nil).IsWordTimestamped() {
		t.Error("empty document should not be word timestamped")
	}

	// single ideographs count via the short-text rule
	cjk := make([]Segment, 10)
	for i := range cjk {
		cjk[i] = NewSegment("你", i*1000, i*1000+500)
	}
	if !New(cjk).IsWordTimestamped() {
		t.Error("single-ideograph segments should be word timestamped")
	}
}

func TestMergeSegments(t *testing.T) {
	doc := New([]Segment{
		{Text: "ab", TranslatedText: "AB", StartMS: 0, EndMS: 1000},
		{Text: "cd", TranslatedText: "CD", StartMS: 1000, EndMS: 2000},
		{Text: "ef", TranslatedText: "EF", StartMS: 2000, EndMS: 3000},
		{Text: "gh", TranslatedText: "GH", StartMS: 3000, EndMS: 4000},
	})

	merged, err := doc.MergeSegments(1, 2, "")
	if err != nil {
		t.Fatalf("MergeSegments failed: %v", err)
	}
	if merged.Len() != 3 {
		t.Fatalf("expected 3 segments, got %d", merged.Len())
	}
	seg := merged.Segments[1]
	if seg.Text != "cdef" {
		t.Errorf("merged text = %q, want %q", seg.Text, "cdef")
	}
	if seg.StartMS != 1000 || seg.EndMS != 3000 {
		t.Errorf("merged span = [%d, %d], want [1000, 3000]", seg.StartMS, seg.EndMS)
	}
	if seg.TranslatedText != "" {
		t.Errorf("merged segment kept translated text %q", seg.TranslatedText)
	}

	// original document untouched
	if doc.Len() != 4 {
		t.Errorf("source document mutated: %d segments", doc.Len())
	}
}

func TestMergeSegmentsWithExplicitText(t *testing.T) {
	doc := New([]Segment{
		NewSegment("ab", 0, 1000),
		NewSegment("cd", 1000, 2000),
	})
	merged, err := doc.MergeSegments(0, 1, "replacement")
	if err != nil {
		t.Fatalf("MergeSegments failed: %v", err)
	}
	if merged.Segments[0].Text != "replacement" {
		t.Errorf("merged text = %q, want %q", merged.Segments[0].Text, "replacement")
	}
}

func TestMergeSegmentsEmptyTextMeansConcatenate(t *testing.T) {
	doc := New([]Segment{
		NewSegment("ab", 0, 1000),
		NewSegment("cd", 1000, 2000),
	})
	merged, err := doc.MergeSegments(0, 1, "")
	if err != nil {
		t.Fatalf("MergeSegments failed: %v", err)
	}
	// The empty string requests the default concatenation; a merge can
	// never yield an empty cue.
	if merged.Segments[0].Text != "abcd" {
		t.Errorf("merged text = %q, want %q", merged.Segments[0].Text, "abcd")
	}
}

func TestMergeSegmentsInvalidRange(t *testing.T) {
	doc := New([]Segment{
		NewSegment("a", 0, 1), NewSegment("b", 1, 2),
		NewSegment("c", 2, 3), NewSegment("d", 3, 4),
	})

	tests := []struct {
		name       string
		start, end int
	}{
		{"end beyond count", 0, 5},
		{"negative start", -1, 2},
		{"inverted", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := doc.MergeSegments(tt.start, tt.end, ""); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("expected ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestMergeWithNext(t *testing.T) {
	doc := New([]Segment{
		{Text: "hello", TranslatedText: "bonjour", StartMS: 0, EndMS: 1000},
		{Text: "world", TranslatedText: "monde", StartMS: 1000, EndMS: 2000},
		{Text: "again", StartMS: 2000, EndMS: 3000},
	})

	merged, err := doc.MergeWithNext(0)
	if err != nil {
		t.Fatalf("MergeWithNext failed: %v", err)
	}
	if merged.Len() != 2 {
		t.Fatalf("expected 2 segments, got %d", merged.Len())
	}
	seg := merged.Segments[0]
	if seg.Text != "hello world" {
		t.Errorf("merged text = %q, want %q", seg.Text, "hello world")
	}
	if seg.StartMS != 0 || seg.EndMS != 2000 {
		t.Errorf("merged span = [%d, %d], want [0, 2000]", seg.StartMS, seg.EndMS)
	}
	if seg.TranslatedText != "" {
		t.Errorf("merged segment kept translated text %q", seg.TranslatedText)
	}

	if _, err := doc.MergeWithNext(2); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for last segment, got %v", err)
	}
	if _, err := doc.MergeWithNext(-1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for negative index, got %v", err)
	}
}
