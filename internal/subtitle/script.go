package subtitle

// Token segmentation rules for SplitToWordSegments. Rules are tested in
// fixed priority order; the first rule matching a code point claims it.
// Word-like scripts consume their whole contiguous run, character-like
// scripts yield one token per code point, Thai additionally attaches
// trailing combining marks to the base character. Code points outside
// every rule produce no token.

type segmentationMode int

const (
	modeRun  segmentationMode = iota // whole contiguous run is one token
	modeChar                         // one code point per token
	modeThai                         // base character plus trailing combining marks
)

type scriptRule struct {
	match func(rune) bool
	mode  segmentationMode
}

var scriptRules = []scriptRule{
	{isLatinWordRune, modeRun},          // Latin incl. extensions and apostrophe
	{between(0x0400, 0x04FF), modeRun},  // Cyrillic
	{between(0x0370, 0x03FF), modeRun},  // Greek
	{between(0x0600, 0x06FF), modeRun},  // Arabic
	{between(0x0590, 0x05FF), modeRun},  // Hebrew
	{isDecimalDigit, modeRun},           // digit runs
	{between(0x4E00, 0x9FFF), modeChar}, // CJK ideographs
	{between(0x3040, 0x309F), modeChar}, // hiragana
	{between(0x30A0, 0x30FF), modeChar}, // katakana
	{between(0xAC00, 0xD7AF), modeChar}, // Hangul syllables
	{between(0x0E00, 0x0E7F), modeThai}, // Thai
	{between(0x0900, 0x097F), modeChar}, // Devanagari
	{between(0x0980, 0x09FF), modeChar}, // Bengali
	{between(0x0E80, 0x0EFF), modeChar}, // Lao
	{between(0x1000, 0x109F), modeChar}, // Burmese
}

func between(lo, hi rune) func(rune) bool {
	return func(r rune) bool { return r >= lo && r <= hi }
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLatinWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '\'':
		return true
	case r >= 0x00C0 && r <= 0x00FF: // Latin-1 Supplement letters
		return true
	case r >= 0x0100 && r <= 0x017F: // Latin Extended-A
		return true
	}
	return false
}

func isThaiCombining(r rune) bool {
	return (r >= 0x0E30 && r <= 0x0E3A) || (r >= 0x0E47 && r <= 0x0E4E)
}

// token is one lexical unit. Length is measured in code points for phoneme
// estimation.
type token struct {
	text  string
	runes int
}

func tokenize(text string) []token {
	runes := []rune(text)
	var tokens []token
	for i := 0; i < len(runes); {
		rule, ok := matchScriptRule(runes[i])
		if !ok {
			i++
			continue
		}
		start := i
		i++
		switch rule.mode {
		case modeRun:
			for i < len(runes) && rule.match(runes[i]) {
				i++
			}
		case modeThai:
			for i < len(runes) && isThaiCombining(runes[i]) {
				i++
			}
		}
		tokens = append(tokens, token{
			text:  string(runes[start:i]),
			runes: i - start,
		})
	}
	return tokens
}

func matchScriptRule(r rune) (scriptRule, bool) {
	for _, rule := range scriptRules {
		if rule.match(r) {
			return rule, true
		}
	}
	return scriptRule{}, false
}
