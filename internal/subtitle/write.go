package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subkit/internal/fileutil"
)

// Layout selects which text tracks a serializer emits and their order.
type Layout int

const (
	// LayoutOriginalTop stacks the original text above the translation.
	LayoutOriginalTop Layout = iota
	// LayoutTranslatedTop stacks the translation above the original text.
	LayoutTranslatedTop
	// LayoutOriginalOnly emits only the original text.
	LayoutOriginalOnly
	// LayoutTranslatedOnly emits the translation, falling back to the
	// original text where no translation exists.
	LayoutTranslatedOnly
)

// ParseLayout maps a layout name to its Layout value.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "original-top":
		return LayoutOriginalTop, nil
	case "translated-top":
		return LayoutTranslatedTop, nil
	case "original-only":
		return LayoutOriginalOnly, nil
	case "translated-only":
		return LayoutTranslatedOnly, nil
	default:
		return LayoutOriginalTop, fmt.Errorf(
			"unknown layout %q: use original-top, translated-top, original-only, or translated-only", s,
		)
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutOriginalTop:
		return "original-top"
	case LayoutTranslatedTop:
		return "translated-top"
	case LayoutOriginalOnly:
		return "original-only"
	case LayoutTranslatedOnly:
		return "translated-only"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// render resolves one segment's text for plain-text and SRT output.
// Unrecognized layouts fall back to the original text.
func (l Layout) render(seg Segment) string {
	switch l {
	case LayoutOriginalTop:
		if seg.TranslatedText != "" {
			return seg.Text + "\n" + seg.TranslatedText
		}
		return seg.Text
	case LayoutTranslatedTop:
		if seg.TranslatedText != "" {
			return seg.TranslatedText + "\n" + seg.Text
		}
		return seg.Text
	case LayoutOriginalOnly:
		return seg.Text
	case LayoutTranslatedOnly:
		if seg.TranslatedText != "" {
			return seg.TranslatedText
		}
		return seg.Text
	default:
		return seg.Text
	}
}

// ToTxt renders the track as plain text without timestamps.
func (d *Document) ToTxt(layout Layout) string {
	lines := make([]string, len(d.Segments))
	for i, seg := range d.Segments {
		lines[i] = layout.render(seg)
	}
	return strings.Join(lines, "\n")
}

// ToSrt renders the track as SRT with 1-based cue numbers.
func (d *Document) ToSrt(layout Layout) string {
	blocks := make([]string, len(d.Segments))
	for i, seg := range d.Segments {
		blocks[i] = fmt.Sprintf("%d\n%s\n%s\n", i+1, seg.SRTTimestamp(), layout.render(seg))
	}
	return strings.Join(blocks, "\n")
}

const defaultASSStyles = "[V4+ Styles]\n" +
	"Format: Name,Fontname,Fontsize,PrimaryColour,SecondaryColour,OutlineColour,BackColour," +
	"Bold,Italic,Underline,StrikeOut,ScaleX,ScaleY,Spacing,Angle,BorderStyle,Outline,Shadow," +
	"Alignment,MarginL,MarginR,MarginV,Encoding\n" +
	"Style: Default,MicrosoftYaHei-Bold,40,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,-1,0,0,0,100,100," +
	"0,0,1,2,0,2,10,10,15,1\n" +
	"Style: Secondary,MicrosoftYaHei-Bold,30,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,-1,0,0,0,100,100," +
	"0,0,1,2,0,2,10,10,15,1"

// ToAss renders the track as an ASS script against a 1280x720 reference
// resolution. A non-empty styleStr replaces the built-in [V4+ Styles]
// section. Segments with a non-blank translation produce two dialogue
// lines, one per style; layouts outside the four known values behave as
// LayoutOriginalOnly.
func (d *Document) ToAss(styleStr string, layout Layout) string {
	if styleStr == "" {
		styleStr = defaultASSStyles
	}

	var sb strings.Builder
	sb.WriteString("[Script Info]\n")
	sb.WriteString("; " + generatorSignature + "\n")
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("PlayResX: 1280\n")
	sb.WriteString("PlayResY: 720\n\n")
	sb.WriteString(styleStr)
	sb.WriteString("\n\n[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	dialogue := func(start, end, style, text string) {
		fmt.Fprintf(&sb, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s\n", start, end, style, text)
	}

	for _, seg := range d.Segments {
		start, end := seg.ASSTimestamps()
		hasTranslation := strings.TrimSpace(seg.TranslatedText) != ""

		switch layout {
		case LayoutTranslatedTop:
			if hasTranslation {
				dialogue(start, end, "Secondary", seg.Text)
				dialogue(start, end, "Default", seg.TranslatedText)
			} else {
				dialogue(start, end, "Default", seg.Text)
			}
		case LayoutOriginalTop:
			if hasTranslation {
				dialogue(start, end, "Secondary", seg.TranslatedText)
				dialogue(start, end, "Default", seg.Text)
			} else {
				dialogue(start, end, "Default", seg.Text)
			}
		case LayoutTranslatedOnly:
			text := seg.Text
			if hasTranslation {
				text = seg.TranslatedText
			}
			dialogue(start, end, "Default", text)
		default:
			dialogue(start, end, "Default", seg.Text)
		}
	}
	return sb.String()
}

// ToLrc is declared for completeness; LRC output is not supported.
func (d *Document) ToLrc() (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnimplementedFormat, FormatLRC)
}

// ToVtt is declared for completeness; WebVTT output is not supported.
func (d *Document) ToVtt() (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnimplementedFormat, FormatVTT)
}

// Save writes the track to path, choosing the serializer from the file
// extension (.srt, .txt, .json, .ass). The path runs through the long-path
// collaborator first and the parent directory is created if needed. A
// single write attempt is made; failures propagate without cleanup.
func (d *Document) Save(path string, assStyle string, layout Layout) error {
	path = fileutil.NormalizeLongPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var content []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".srt":
		content = []byte(d.ToSrt(layout))
	case ".txt":
		content = []byte(d.ToTxt(layout))
	case ".json":
		data, err := d.ToJSON()
		if err != nil {
			return err
		}
		content = data
	case ".ass":
		content = []byte(d.ToAss(assStyle, layout))
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return os.WriteFile(path, content, 0644)
}
