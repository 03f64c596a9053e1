package subtitle

import (
	"strings"
	"testing"
)

const assHeader = `[Script Info]
Title: Test
ScriptType: v4.00+

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
`

func TestFromASS(t *testing.T) {
	content := assHeader + `Dialogue: 0,0:00:01.00,0:00:04.00,Default,,0,0,0,,Hello, world!
Dialogue: 0,0:00:05.50,0:00:08.20,Default,,0,0,0,,{\pos(100,200)}Tagged text
Dialogue: 0,0:00:10.00,0:00:12.50,Default,,0,0,0,,Line with\Nnewline
`
	doc := FromASS(content)
	if doc.Len() != 3 {
		t.Fatalf("expected 3 segments, got %d", doc.Len())
	}
	if doc.Segments[0].StartMS != 1000 || doc.Segments[0].EndMS != 4000 {
		t.Errorf("segment 0 span = [%d, %d], want [1000, 4000]",
			doc.Segments[0].StartMS, doc.Segments[0].EndMS)
	}
	if doc.Segments[0].Text != "Hello, world!" {
		t.Errorf("segment 0 text = %q", doc.Segments[0].Text)
	}
	if doc.Segments[1].Text != "Tagged text" {
		t.Errorf("override block not stripped: %q", doc.Segments[1].Text)
	}
	if doc.Segments[2].Text != "Line with\nnewline" {
		t.Errorf("\\N not converted: %q", doc.Segments[2].Text)
	}
}

func TestFromASSBilingual(t *testing.T) {
	content := "[Script Info]\n; " + generatorSignature + "\n" + `ScriptType: v4.00+

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Secondary,,0,0,0,,你好
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello
`
	doc := FromASS(content)
	if doc.Len() != 1 {
		t.Fatalf("expected 1 merged segment, got %d", doc.Len())
	}
	seg := doc.Segments[0]
	if seg.Text != "你好" || seg.TranslatedText != "Hello" {
		t.Errorf("segment = %q / %q, want 你好 / Hello", seg.Text, seg.TranslatedText)
	}
	if seg.StartMS != 1000 || seg.EndMS != 2000 {
		t.Errorf("span = [%d, %d], want [1000, 2000]", seg.StartMS, seg.EndMS)
	}
}

func TestFromASSBilingualFlushesUnpaired(t *testing.T) {
	content := "[Script Info]\n; " + generatorSignature + "\n" + `
[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Secondary,,0,0,0,,孤独
`
	doc := FromASS(content)
	if doc.Len() != 1 {
		t.Fatalf("expected 1 flushed segment, got %d", doc.Len())
	}
	if doc.Segments[0].Text != "孤独" || doc.Segments[0].TranslatedText != "" {
		t.Errorf("flushed segment = %q / %q",
			doc.Segments[0].Text, doc.Segments[0].TranslatedText)
	}
}

func TestToAss(t *testing.T) {
	doc := New([]Segment{
		{Text: "Hello", TranslatedText: "你好", StartMS: 1000, EndMS: 2000},
		{Text: "Plain", StartMS: 2000, EndMS: 3000},
	})

	out := doc.ToAss("", LayoutOriginalTop)

	for _, want := range []string{
		"PlayResX: 1280",
		"PlayResY: 720",
		"Style: Default,MicrosoftYaHei-Bold,40",
		"Style: Secondary,MicrosoftYaHei-Bold,30",
		"Dialogue: 0,0:00:01.00,0:00:02.00,Secondary,,0,0,0,,你好",
		"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello",
		"Dialogue: 0,0:00:02.00,0:00:03.00,Default,,0,0,0,,Plain",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// One dialogue line for the monolingual segment, two for the bilingual.
	if got := strings.Count(out, "Dialogue:"); got != 3 {
		t.Errorf("expected 3 dialogue lines, got %d", got)
	}
}

func TestToAssCustomStyle(t *testing.T) {
	doc := New([]Segment{NewSegment("x", 0, 1000)})
	style := "[V4+ Styles]\nFormat: Name, Fontname\nStyle: Default,Arial"

	out := doc.ToAss(style, LayoutOriginalOnly)
	if !strings.Contains(out, "Style: Default,Arial") {
		t.Error("caller style section not used")
	}
	if strings.Contains(out, "MicrosoftYaHei-Bold") {
		t.Error("built-in styles emitted despite caller style")
	}
}

func TestToAssLayouts(t *testing.T) {
	doc := New([]Segment{
		{Text: "orig", TranslatedText: "trans", StartMS: 0, EndMS: 1000},
	})

	tests := []struct {
		name      string
		layout    Layout
		wantLines []string
	}{
		{"translated top", LayoutTranslatedTop, []string{
			"Dialogue: 0,0:00:00.00,0:00:01.00,Secondary,,0,0,0,,orig",
			"Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,trans",
		}},
		{"original only", LayoutOriginalOnly, []string{
			"Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,orig",
		}},
		{"translated only", LayoutTranslatedOnly, []string{
			"Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,trans",
		}},
		{"unknown behaves as original only", Layout(42), []string{
			"Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,orig",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := doc.ToAss("", tt.layout)
			if got := strings.Count(out, "Dialogue:"); got != len(tt.wantLines) {
				t.Fatalf("expected %d dialogue lines, got %d", len(tt.wantLines), got)
			}
			for _, line := range tt.wantLines {
				if !strings.Contains(out, line) {
					t.Errorf("output missing %q", line)
				}
			}
		})
	}
}

func TestASSBilingualRoundTrip(t *testing.T) {
	doc := New([]Segment{
		{Text: "Hello", TranslatedText: "你好", StartMS: 1000, EndMS: 2000},
		{Text: "World", TranslatedText: "世界", StartMS: 3000, EndMS: 4000},
	})

	// Under the translated-top layout the Default style carries the
	// translation, which is exactly what the bilingual parser expects.
	parsed := FromASS(doc.ToAss("", LayoutTranslatedTop))
	if parsed.Len() != 2 {
		t.Fatalf("expected 2 segments, got %d", parsed.Len())
	}
	for i := range doc.Segments {
		if parsed.Segments[i] != doc.Segments[i] {
			t.Errorf("segment %d changed: got %+v, want %+v",
				i, parsed.Segments[i], doc.Segments[i])
		}
	}
}
