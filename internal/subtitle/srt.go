package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	srtTimestampRe = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{1,2})[.,](\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{1,2})[.,](\d{3})`,
	)
	blockBoundaryRe = regexp.MustCompile(`\n\s*\n`)
)

// FromSRT parses SRT content into a Document. Blocks missing a timestamp
// line or shorter than three lines are skipped. Tracks where every block
// has at most four lines and at least 98% have exactly four are treated as
// bilingual, the fourth line carrying the translation.
func FromSRT(content string, opts ...ParseOption) *Document {
	cfg := newParseConfig(opts)
	blocks := blockBoundaryRe.Split(strings.TrimSpace(normalizeNewlines(content)), -1)

	fourLine := 0
	bilingual := len(blocks) > 0
	for _, block := range blocks {
		switch n := len(strings.Split(block, "\n")); {
		case n > 4:
			bilingual = false
		case n == 4:
			fourLine++
		}
	}
	if bilingual {
		bilingual = float64(fourLine)/float64(len(blocks)) >= 0.98
	}

	var segs []Segment
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			cfg.skip(FormatSRT, "block shorter than three lines")
			continue
		}
		m := srtTimestampRe.FindStringSubmatch(lines[1])
		if m == nil {
			cfg.skip(FormatSRT, "missing timestamp line")
			continue
		}
		seg := Segment{
			Text:    lines[2],
			StartMS: hmsToMS(m[1], m[2], m[3], m[4]),
			EndMS:   hmsToMS(m[5], m[6], m[7], m[8]),
		}
		if bilingual && len(lines) >= 4 {
			seg.TranslatedText = lines[3]
		}
		segs = append(segs, seg)
	}
	return New(segs)
}

func hmsToMS(hours, minutes, seconds, millis string) int {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)
	return h*3600000 + m*60000 + s*1000 + ms
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
