package subtitle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Open loads and parses a subtitle file, choosing the parser from the file
// extension (.srt, .vtt, .ass, .json). VTT content containing "<c>" markup
// is treated as the YouTube word-level variant.
func Open(path string, opts ...ParseOption) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	content, err := decodeContent(raw)
	if err != nil {
		return nil, err
	}
	return Parse(content, filepath.Ext(path), opts...)
}

// Parse dispatches content to the parser for ext.
func Parse(content, ext string, opts ...ParseOption) (*Document, error) {
	switch strings.ToLower(ext) {
	case ".srt":
		return FromSRT(content, opts...), nil
	case ".vtt":
		if strings.Contains(content, "<c>") {
			return FromYouTubeVTT(content, opts...), nil
		}
		return FromVTT(content, opts...), nil
	case ".ass":
		return FromASS(content, opts...), nil
	case ".json":
		return FromJSON([]byte(content), opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// replacementChar is U+FFFD as encoded UTF-8 bytes.
var replacementChar = []byte("\ufffd")

// decodeContent interprets raw as UTF-8, falling back to GBK for legacy
// files. Content that decodes under neither encoding fails with ErrDecode.
func decodeContent(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	// The GBK decoder substitutes U+FFFD for undecodable sequences instead
	// of failing. A replacement character the input never contained means
	// the fallback did not fit either.
	if bytes.Contains(decoded, replacementChar) && !bytes.Contains(raw, replacementChar) {
		return "", fmt.Errorf("%w: content is neither UTF-8 nor GBK", ErrDecode)
	}
	return string(decoded), nil
}
