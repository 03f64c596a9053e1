package subtitle

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// jsonSegment is the on-disk record shape shared by FromJSON and ToJSON.
type jsonSegment struct {
	StartTime          int    `json:"start_time"`
	EndTime            int    `json:"end_time"`
	OriginalSubtitle   string `json:"original_subtitle"`
	TranslatedSubtitle string `json:"translated_subtitle"`
}

// FromJSON parses the ordinal-keyed JSON shape emitted by ToJSON, visiting
// keys in ascending numeric order. Keys that are not integers are skipped
// and reported through the skip hook.
func FromJSON(data []byte, opts ...ParseOption) (*Document, error) {
	cfg := newParseConfig(opts)

	var records map[string]jsonSegment
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON subtitle: %w", err)
	}

	ordinals := make([]int, 0, len(records))
	byOrdinal := make(map[int]jsonSegment, len(records))
	for key, record := range records {
		ordinal, err := strconv.Atoi(key)
		if err != nil {
			cfg.skip(FormatJSON, "non-integer segment key")
			continue
		}
		ordinals = append(ordinals, ordinal)
		byOrdinal[ordinal] = record
	}
	sort.Ints(ordinals)

	segs := make([]Segment, 0, len(ordinals))
	for _, ordinal := range ordinals {
		record := byOrdinal[ordinal]
		segs = append(segs, Segment{
			Text:           record.OriginalSubtitle,
			TranslatedText: record.TranslatedSubtitle,
			StartMS:        record.StartTime,
			EndMS:          record.EndTime,
		})
	}
	return New(segs), nil
}

// ToJSON renders the track as the ordinal-keyed JSON shape FromJSON
// consumes, keys counting from "1".
func (d *Document) ToJSON() ([]byte, error) {
	records := make(map[string]jsonSegment, len(d.Segments))
	for i, seg := range d.Segments {
		records[strconv.Itoa(i+1)] = jsonSegment{
			StartTime:          seg.StartMS,
			EndTime:            seg.EndMS,
			OriginalSubtitle:   seg.Text,
			TranslatedSubtitle: seg.TranslatedText,
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON subtitle: %w", err)
	}
	return data, nil
}
