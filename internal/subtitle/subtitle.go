// Package subtitle normalizes timed-text tracks from several textual
// formats into a single in-memory representation, applies timing and
// segmentation transforms, and re-emits the result.
package subtitle

// Format identifies a subtitle wire format.
type Format string

const (
	FormatSRT        Format = "srt"
	FormatVTT        Format = "vtt"
	FormatYouTubeVTT Format = "youtube-vtt"
	FormatASS        Format = "ass"
	FormatJSON       Format = "json"
	FormatTXT        Format = "txt"
	FormatLRC        Format = "lrc"
)
