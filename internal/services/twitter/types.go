package twitter

import "github.com/tvidder/tvidder/internal/models"

// tweetResponse mirrors the Twitter API v2 tweet lookup payload with the
// attachments.media_keys expansion applied.
type tweetResponse struct {
	Data struct {
		ID          string `json:"id"`
		Text        string `json:"text"`
		Attachments struct {
			MediaKeys []string `json:"media_keys"`
		} `json:"attachments"`
	} `json:"data"`
	Includes struct {
		Media []mediaObject `json:"media"`
	} `json:"includes"`
	Errors []apiError `json:"errors"`
}

type mediaObject struct {
	MediaKey   string           `json:"media_key"`
	Type       string           `json:"type"`
	URL        string           `json:"url"`
	DurationMs int64            `json:"duration_ms"`
	Variants   []models.Variant `json:"variants"`
}

type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
