package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	vttLongTimestampRe = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})`,
	)
	vttShortTimestampRe = regexp.MustCompile(
		`^(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})`,
	)
	inlineTimestampRe = regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d{3}>`)
	cueTagRe          = regexp.MustCompile(`</?c>`)

	ytBlockTimestampRe = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{2}\.\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}\.\d{3})`,
	)
	ytMarkupLineRe = regexp.MustCompile(`\n(.*?<c>.*?</c>.*)`)
	ytWordRe       = regexp.MustCompile(`<(\d{2}:\d{2}:\d{2}\.\d{3})>([^<]*)`)
	blankLineRunRe = regexp.MustCompile(`\n\n+`)
)

// FromVTT parses plain WebVTT content. The first two blank-line delimited
// chunks are header metadata and are skipped. An optional cue-id line is
// tolerated before the timing line; inline karaoke timestamps and <c> tags
// are stripped from the cue text.
func FromVTT(content string, opts ...ParseOption) *Document {
	cfg := newParseConfig(opts)
	chunks := strings.Split(normalizeNewlines(content), "\n\n")
	if len(chunks) <= 2 {
		chunks = nil
	} else {
		chunks = chunks[2:]
	}

	var segs []Segment
	for _, chunk := range chunks {
		lines := strings.Split(strings.TrimSpace(chunk), "\n")
		if len(lines) < 2 {
			cfg.skip(FormatVTT, "cue shorter than two lines")
			continue
		}

		timingLine := lines[0]
		textFrom := 1
		if !strings.Contains(lines[0], "-->") {
			timingLine = lines[1]
			textFrom = 2
		}

		var startMS, endMS int
		if m := vttLongTimestampRe.FindStringSubmatch(timingLine); m != nil {
			startMS = hmsToMS(m[1], m[2], m[3], m[4])
			endMS = hmsToMS(m[5], m[6], m[7], m[8])
		} else if m := vttShortTimestampRe.FindStringSubmatch(timingLine); m != nil {
			startMS = hmsToMS("0", m[1], m[2], m[3])
			endMS = hmsToMS("0", m[4], m[5], m[6])
		} else {
			cfg.skip(FormatVTT, "missing cue timing line")
			continue
		}

		text := strings.Join(lines[textFrom:], " ")
		text = inlineTimestampRe.ReplaceAllString(text, "")
		text = cueTagRe.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if text == "" {
			cfg.skip(FormatVTT, "cue with no text")
			continue
		}
		segs = append(segs, Segment{Text: text, StartMS: startMS, EndMS: endMS})
	}
	return New(segs)
}

// FromYouTubeVTT parses YouTube's word-level WebVTT variant. Each cue's own
// start/end timestamps are wrapped around its inline-timestamped text, and
// every adjacent pair of markers yields one word segment; the final marker
// only bounds the last word.
func FromYouTubeVTT(content string, opts ...ParseOption) *Document {
	cfg := newParseConfig(opts)
	var segs []Segment

	blocks := blankLineRunRe.Split(strings.TrimSpace(normalizeNewlines(content)), -1)
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) == 0 {
			continue
		}
		m := ytBlockTimestampRe.FindStringSubmatch(lines[0])
		if m == nil {
			cfg.skip(FormatYouTubeVTT, "missing cue timing line")
			continue
		}
		markup := ytMarkupLineRe.FindStringSubmatch(block)
		if markup == nil {
			cfg.skip(FormatYouTubeVTT, "cue without word markup")
			continue
		}

		text := cueTagRe.ReplaceAllString(markup[1], "")
		text = fmt.Sprintf("<%s:%s:%s>%s<%s:%s:%s>",
			m[1], m[2], m[3], text, m[4], m[5], m[6])

		words := ytWordRe.FindAllStringSubmatch(text, -1)
		for i := 0; i+1 < len(words); i++ {
			word := strings.TrimSpace(words[i][2])
			if word == "" {
				continue
			}
			segs = append(segs, Segment{
				Text:    word,
				StartMS: vttTimestampToMS(words[i][1]),
				EndMS:   vttTimestampToMS(words[i+1][1]),
			})
		}
	}
	return New(segs)
}

func vttTimestampToMS(ts string) int {
	parts := strings.SplitN(ts, ":", 3)
	if len(parts) != 3 {
		return 0
	}
	h, _ := strconv.ParseFloat(parts[0], 64)
	m, _ := strconv.ParseFloat(parts[1], 64)
	s, _ := strconv.ParseFloat(parts[2], 64)
	return int(h*3600000 + m*60000 + s*1000)
}
