package twitter

import (
	"regexp"

	"github.com/tvidder/tvidder/internal/models"
	"github.com/tvidder/tvidder/internal/utils"
)

// mp4ContentType is the only playable variant type; HLS manifests
// (application/x-mpegURL) are not direct downloads.
const mp4ContentType = "video/mp4"

var tweetIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:twitter|x)\.com/\w+/status(?:es)?/(\d+)`),
	regexp.MustCompile(`(?:twitter|x)\.com/i/web/status/(\d+)`),
}

// ExtractTweetID pulls the numeric tweet ID out of a Twitter/X post URL.
// The ID is kept as an opaque digit string; trailing query parameters and
// fragments are ignored by the patterns.
func ExtractTweetID(postURL string) (string, *utils.AppError) {
	for _, pattern := range tweetIDPatterns {
		if matches := pattern.FindStringSubmatch(postURL); len(matches) > 1 {
			return matches[1], nil
		}
	}
	return "", utils.NewInvalidURLError(postURL)
}

// SelectVariant picks the playable variant matching the quality policy:
// highest bit rate for QualityHigh, lowest for QualityLow. Returns false
// when no MP4 variant exists.
func SelectVariant(variants []models.Variant, quality models.Quality) (models.Variant, bool) {
	var best *models.Variant
	for i := range variants {
		v := &variants[i]
		if v.ContentType != mp4ContentType {
			continue
		}
		if best == nil {
			best = v
			continue
		}
		if quality == models.QualityLow {
			if v.Bitrate < best.Bitrate {
				best = v
			}
		} else if v.Bitrate > best.Bitrate {
			best = v
		}
	}
	if best == nil {
		return models.Variant{}, false
	}
	return *best, true
}
