package twitter

import (
	"context"

	"github.com/tvidder/tvidder/internal/models"
	"github.com/tvidder/tvidder/internal/utils"
)

// TweetMediaSource resolves a tweet's downloadable video asset.
type TweetMediaSource interface {
	// GetVideoAsset looks the tweet up via the API and returns the variant
	// matching the requested quality policy.
	GetVideoAsset(ctx context.Context, tweetID string, quality models.Quality) (*models.VideoAsset, *utils.AppError)
}
