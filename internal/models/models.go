package models

import "strings"

// Quality selects which video variant the pipeline resolves.
type Quality string

const (
	QualityLow  Quality = "low"
	QualityHigh Quality = "high"
)

// ParseQuality maps a user-supplied string onto a Quality value.
func ParseQuality(s string) (Quality, bool) {
	switch Quality(strings.ToLower(s)) {
	case QualityLow:
		return QualityLow, true
	case QualityHigh:
		return QualityHigh, true
	}
	return "", false
}

// Variant is one encoded rendition of a tweet's video attachment, as
// returned by the Twitter API v2 media expansion. Manifest variants
// (application/x-mpegURL) carry no bit rate.
type Variant struct {
	Bitrate     int64  `json:"bit_rate,omitempty"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

// VideoAsset is the resolved download target for a tweet.
type VideoAsset struct {
	TweetID    string
	URL        string
	Bitrate    int64
	MediaType  string // "video" or "animated_gif"
	DurationMs int64
}
