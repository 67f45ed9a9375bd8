package twitter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tvidder/tvidder/internal/config"
	"github.com/tvidder/tvidder/internal/models"
	"github.com/tvidder/tvidder/internal/utils"
)

const tweetWithVideo = `{
	"data": {
		"id": "1234567890",
		"text": "check this out",
		"attachments": {"media_keys": ["3_1234567890"]}
	},
	"includes": {
		"media": [
			{
				"media_key": "3_1234567890",
				"type": "video",
				"duration_ms": 30066,
				"variants": [
					{"bit_rate": 280000, "content_type": "video/mp4", "url": "https://video.twimg.com/vid/280/a.mp4"},
					{"content_type": "application/x-mpegURL", "url": "https://video.twimg.com/pl/a.m3u8"},
					{"bit_rate": 2176000, "content_type": "video/mp4", "url": "https://video.twimg.com/vid/2176/a.mp4"}
				]
			}
		]
	}
}`

const tweetWithoutMedia = `{
	"data": {"id": "1234567890", "text": "just text"}
}`

const tweetWithPhoto = `{
	"data": {
		"id": "1234567890",
		"attachments": {"media_keys": ["3_1"]}
	},
	"includes": {
		"media": [
			{"media_key": "3_1", "type": "photo", "url": "https://pbs.twimg.com/media/a.jpg"}
		]
	}
}`

func newTestClient(serverURL string) *Client {
	return NewClient(&config.TwitterConfig{
		BearerToken: "test-token",
		APIBaseURL:  serverURL,
		HTTPTimeout: 5 * time.Second,
	})
}

func TestGetVideoAsset(t *testing.T) {
	var gotPath, gotAuth, gotExpansions string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotExpansions = r.URL.Query().Get("expansions")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tweetWithVideo))
	}))
	defer server.Close()

	asset, err := newTestClient(server.URL).GetVideoAsset(context.Background(), "1234567890", models.QualityHigh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/tweets/1234567890" {
		t.Fatalf("expected path /tweets/1234567890, got %s", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotExpansions != "attachments.media_keys" {
		t.Fatalf("expected media expansion, got %q", gotExpansions)
	}
	if asset.URL != "https://video.twimg.com/vid/2176/a.mp4" {
		t.Fatalf("expected highest bitrate variant, got %s", asset.URL)
	}
	if asset.Bitrate != 2176000 {
		t.Fatalf("expected bitrate 2176000, got %d", asset.Bitrate)
	}
	if asset.MediaType != "video" {
		t.Fatalf("expected media type video, got %s", asset.MediaType)
	}
}

func TestGetVideoAsset_LowQuality(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tweetWithVideo))
	}))
	defer server.Close()

	asset, err := newTestClient(server.URL).GetVideoAsset(context.Background(), "1234567890", models.QualityLow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Bitrate != 280000 {
		t.Fatalf("expected bitrate 280000, got %d", asset.Bitrate)
	}
}

func TestGetVideoAsset_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		body         string
		expectedCode utils.ErrorCode
		expectedExit int
	}{
		{
			name:         "Unauthorized",
			status:       http.StatusUnauthorized,
			body:         `{"title":"Unauthorized"}`,
			expectedCode: utils.ErrorCodeAuthentication,
			expectedExit: utils.ExitAPIFailure,
		},
		{
			name:         "Forbidden",
			status:       http.StatusForbidden,
			body:         `{"title":"Forbidden"}`,
			expectedCode: utils.ErrorCodeAuthentication,
			expectedExit: utils.ExitAPIFailure,
		},
		{
			name:         "Rate limited",
			status:       http.StatusTooManyRequests,
			body:         `{"title":"Too Many Requests"}`,
			expectedCode: utils.ErrorCodeRateLimit,
			expectedExit: utils.ExitAPIFailure,
		},
		{
			name:         "Server error",
			status:       http.StatusInternalServerError,
			body:         `{"title":"Internal"}`,
			expectedCode: utils.ErrorCodeNetwork,
			expectedExit: utils.ExitNetwork,
		},
		{
			name:         "No media attached",
			status:       http.StatusOK,
			body:         tweetWithoutMedia,
			expectedCode: utils.ErrorCodeNoVideoFound,
			expectedExit: utils.ExitAPIFailure,
		},
		{
			name:         "Photo attachment only",
			status:       http.StatusOK,
			body:         tweetWithPhoto,
			expectedCode: utils.ErrorCodeNoVideoFound,
			expectedExit: utils.ExitAPIFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).GetVideoAsset(context.Background(), "1234567890", models.QualityHigh)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Code != tc.expectedCode {
				t.Fatalf("expected code %s, got %s", tc.expectedCode, err.Code)
			}
			if err.ExitCode != tc.expectedExit {
				t.Fatalf("expected exit code %d, got %d", tc.expectedExit, err.ExitCode)
			}
		})
	}
}

func TestGetVideoAsset_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).GetVideoAsset(context.Background(), "1234567890", models.QualityHigh)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Code != utils.ErrorCodeNetwork {
		t.Fatalf("expected %s, got %s", utils.ErrorCodeNetwork, err.Code)
	}
}
