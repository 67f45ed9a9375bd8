package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tvidder/tvidder/internal/config"
	"github.com/tvidder/tvidder/internal/models"
	"github.com/tvidder/tvidder/internal/utils"
)

const userAgent = "tvidder/1.0"

type Client struct {
	httpClient *http.Client
	cfg        *config.TwitterConfig
}

// NewClient creates a Twitter API v2 client
func NewClient(cfg *config.TwitterConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		cfg: cfg,
	}
}

// GetVideoAsset fetches tweet metadata with the media expansion and resolves
// the variant matching the quality policy.
func (c *Client) GetVideoAsset(ctx context.Context, tweetID string, quality models.Quality) (*models.VideoAsset, *utils.AppError) {
	endpoint := fmt.Sprintf("%s/tweets/%s", strings.TrimSuffix(c.cfg.APIBaseURL, "/"), tweetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.NewNetworkError(err)
	}

	query := req.URL.Query()
	query.Set("expansions", "attachments.media_keys")
	query.Set("media.fields", "variants,url,type,duration_ms")
	query.Set("tweet.fields", "attachments,entities")
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, utils.NewNetworkError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, utils.NewAuthenticationError(resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, utils.NewRateLimitError()
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, utils.NewNetworkError(fmt.Errorf("unexpected API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var tweet tweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&tweet); err != nil {
		return nil, utils.NewNetworkError(fmt.Errorf("decoding tweet response: %w", err))
	}

	media := pickVideoMedia(tweet.Includes.Media)
	if media == nil {
		return nil, utils.NewNoVideoFoundError(tweetID)
	}

	variant, ok := SelectVariant(media.Variants, quality)
	if !ok {
		return nil, utils.NewNoVideoFoundError(tweetID)
	}

	utils.LogDebug(ctx, "Resolved video variant", utils.Fields{
		"tweet_id":   tweetID,
		"media_type": media.Type,
		"bit_rate":   variant.Bitrate,
	})

	return &models.VideoAsset{
		TweetID:    tweetID,
		URL:        variant.URL,
		Bitrate:    variant.Bitrate,
		MediaType:  media.Type,
		DurationMs: media.DurationMs,
	}, nil
}

// pickVideoMedia returns the first attachment that carries video variants.
func pickVideoMedia(media []mediaObject) *mediaObject {
	for i := range media {
		m := &media[i]
		if (m.Type == "video" || m.Type == "animated_gif") && len(m.Variants) > 0 {
			return m
		}
	}
	return nil
}
