package models

import "time"

// RawItem is a canonicalized news item handed to the pipeline by the
// (external) acquisition layer. The pipeline only reads these and marks
// them processed.
type RawItem struct {
	ID                string     `json:"id"` // itm_<uuid>
	Title             string     `json:"title"`
	Summary           string     `json:"summary"`
	URL               string     `json:"url"`
	Source            string     `json:"source"`
	SourceReliability int        `json:"source_reliability"` // 1-5
	PublishedAt       time.Time  `json:"published_at"`
	IngestedAt        time.Time  `json:"ingested_at"`
	Processed         bool       `json:"processed"`
	ProcessedAt       *time.Time `json:"processed_at,omitempty"`
}

// Text returns the classification input: title and summary joined
func (i *RawItem) Text() string {
	if i.Summary == "" {
		return i.Title
	}
	return i.Title + ". " + i.Summary
}
