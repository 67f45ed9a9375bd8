package grabber

import (
	"context"
	"path/filepath"

	"github.com/tvidder/tvidder/internal/config"
	"github.com/tvidder/tvidder/internal/models"
	"github.com/tvidder/tvidder/internal/services/downloader"
	"github.com/tvidder/tvidder/internal/services/twitter"
	"github.com/tvidder/tvidder/internal/utils"
)

// Grabber sequences the pipeline: post URL -> tweet ID -> video asset ->
// downloaded file. It owns no I/O itself; both collaborators are injected.
type Grabber struct {
	source twitter.TweetMediaSource
	sink   downloader.AssetSink
	cfg    *config.DownloadConfig
}

type Result struct {
	TweetID    string
	AssetURL   string
	OutputPath string
	Bytes      int64
}

func New(source twitter.TweetMediaSource, sink downloader.AssetSink, cfg *config.DownloadConfig) *Grabber {
	return &Grabber{
		source: source,
		sink:   sink,
		cfg:    cfg,
	}
}

// Run executes one download. The first failing step terminates the run;
// errors pass through untranslated for the CLI layer to report.
func (g *Grabber) Run(ctx context.Context, postURL string, quality models.Quality) (*Result, *utils.AppError) {
	tweetID, appErr := twitter.ExtractTweetID(postURL)
	if appErr != nil {
		return nil, appErr
	}

	utils.LogInfo(ctx, "Fetching tweet data", utils.Fields{
		"tweet_id": tweetID,
		"quality":  string(quality),
	})
	asset, appErr := g.source.GetVideoAsset(ctx, tweetID, quality)
	if appErr != nil {
		return nil, appErr
	}

	outputPath := filepath.Join(g.cfg.OutputDir, tweetID+".mp4")
	written, appErr := g.sink.Fetch(ctx, asset.URL, outputPath)
	if appErr != nil {
		return nil, appErr
	}

	return &Result{
		TweetID:    tweetID,
		AssetURL:   asset.URL,
		OutputPath: outputPath,
		Bytes:      written,
	}, nil
}
