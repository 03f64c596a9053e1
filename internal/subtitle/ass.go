package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Scripts written by ToAss carry this marker in [Script Info]; its presence
// tells FromASS the file holds paired original/translated dialogue lines.
const generatorSignature = "Script generated by subkit"

var (
	assDialogueRe = regexp.MustCompile(
		`^Dialogue: \d+,(\d+:\d{2}:\d{2}\.\d{2}),(\d+:\d{2}:\d{2}\.\d{2}),(.*?),.*?,\d+,\d+,\d+,.*?,(.*)$`,
	)
	assOverrideRe = regexp.MustCompile(`\{[^}]*\}`)
)

// FromASS parses the Dialogue lines of an ASS script. In bilingual scripts
// two dialogue lines share one start/end pair: the "Default"-styled line
// holds the translation, the other line the original. Pairs that never
// complete are flushed partially filled at the end, in encounter order.
func FromASS(content string, opts ...ParseOption) *Document {
	cfg := newParseConfig(opts)
	bilingual := strings.Contains(content, generatorSignature)

	var segs []Segment
	pending := make(map[string]*Segment)
	var pendingOrder []string

	for _, line := range strings.Split(normalizeNewlines(content), "\n") {
		if !strings.HasPrefix(line, "Dialogue:") {
			continue
		}
		m := assDialogueRe.FindStringSubmatch(line)
		if m == nil {
			cfg.skip(FormatASS, "unparseable dialogue line")
			continue
		}
		startMS := assTimestampToMS(m[1])
		endMS := assTimestampToMS(m[2])
		style := strings.TrimSpace(m[3])

		text := assOverrideRe.ReplaceAllString(m[4], "")
		text = strings.TrimSpace(strings.ReplaceAll(text, `\N`, "\n"))
		if text == "" {
			continue
		}

		if !bilingual {
			segs = append(segs, Segment{Text: text, StartMS: startMS, EndMS: endMS})
			continue
		}

		key := fmt.Sprintf("%d-%d", startMS, endMS)
		if seg, ok := pending[key]; ok {
			if style == "Default" {
				seg.TranslatedText = text
			} else {
				seg.Text = text
			}
			segs = append(segs, *seg)
			delete(pending, key)
			for i, k := range pendingOrder {
				if k == key {
					pendingOrder = append(pendingOrder[:i], pendingOrder[i+1:]...)
					break
				}
			}
			continue
		}
		seg := &Segment{StartMS: startMS, EndMS: endMS}
		if style == "Default" {
			seg.TranslatedText = text
		} else {
			seg.Text = text
		}
		pending[key] = seg
		pendingOrder = append(pendingOrder, key)
	}

	for _, key := range pendingOrder {
		segs = append(segs, *pending[key])
	}
	return New(segs)
}

func assTimestampToMS(ts string) int {
	parts := strings.SplitN(strings.TrimSpace(ts), ":", 3)
	if len(parts) != 3 {
		return 0
	}
	secParts := strings.SplitN(parts[2], ".", 2)
	if len(secParts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	s, _ := strconv.Atoi(secParts[0])
	cs, _ := strconv.Atoi(secParts[1])
	return h*3600000 + m*60000 + s*1000 + cs*10
}
