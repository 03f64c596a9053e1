package subtitle

import "fmt"

// Segment is one timed span of transcript text with an optional paired
// translation. Times are milliseconds from the start of the track.
type Segment struct {
	Text           string
	TranslatedText string
	StartMS        int
	EndMS          int
}

// NewSegment builds a monolingual segment.
func NewSegment(text string, startMS, endMS int) Segment {
	return Segment{Text: text, StartMS: startMS, EndMS: endMS}
}

// SRTTimestamp renders the segment's span as an SRT cue timing line,
// e.g. "00:01:02,345 --> 00:01:04,000".
func (s Segment) SRTTimestamp() string {
	return msToSRTTime(s.StartMS) + " --> " + msToSRTTime(s.EndMS)
}

// LRCTimestamp renders the segment start as an LRC time tag, e.g. "[01:02.35]".
func (s Segment) LRCTimestamp() string {
	return "[" + msToLRCTime(s.StartMS) + "]"
}

// ASSTimestamps renders start and end in ASS event time format (H:MM:SS.cc).
func (s Segment) ASSTimestamps() (string, string) {
	return msToASSTime(s.StartMS), msToASSTime(s.EndMS)
}

func msToSRTTime(ms int) string {
	millis := ms % 1000
	totalSeconds := ms / 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		totalSeconds/3600, (totalSeconds/60)%60, totalSeconds%60, millis)
}

func msToLRCTime(ms int) string {
	seconds := float64(ms) / 1000
	minutes := int(seconds) / 60
	return fmt.Sprintf("%02d:%.2f", minutes, seconds-float64(minutes*60))
}

func msToASSTime(ms int) string {
	centis := (ms % 1000) / 10
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d:%02d.%02d",
		totalSeconds/3600, (totalSeconds/60)%60, totalSeconds%60, centis)
}
