// Package main provides the tvidder command, a CLI that downloads the video
// attached to an X (Twitter) post via the official API v2.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tvidder/tvidder/internal/config"
	"github.com/tvidder/tvidder/internal/models"
	"github.com/tvidder/tvidder/internal/services/downloader"
	"github.com/tvidder/tvidder/internal/services/grabber"
	"github.com/tvidder/tvidder/internal/services/twitter"
	"github.com/tvidder/tvidder/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:           "tvidder",
	Short:         "Download videos from X (Twitter) posts",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Flags().StringP("url", "u", "", "source post URL")
	rootCmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir, "destination directory, created if missing")
	rootCmd.Flags().StringP("quality", "q", string(models.QualityHigh), "variant selection policy: low or high")
	rootCmd.MarkFlagRequired("url")
	rootCmd.SetArgs(os.Args[1:])

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	postURL, _ := cmd.Flags().GetString("url")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	qualityFlag, _ := cmd.Flags().GetString("quality")

	quality, ok := models.ParseQuality(qualityFlag)
	if !ok {
		return utils.NewValidationError("quality must be \"low\" or \"high\"", map[string]interface{}{
			"provided": qualityFlag,
		})
	}

	cfg, appErr := config.Load()
	if appErr != nil {
		return appErr
	}
	// The flag wins over OUTPUT_DIR only when the user set it.
	if cmd.Flags().Changed("output-dir") {
		cfg.Download.OutputDir = outputDir
	}

	ctx := utils.WithRunID(context.Background(), utils.GenerateRunID())
	utils.LogInfo(ctx, "Starting tvidder", utils.Fields{
		"url":     postURL,
		"quality": string(quality),
	})

	source := twitter.NewClient(&cfg.Twitter)
	sink := downloader.NewService(&cfg.Download, os.Stderr)

	result, appErr := grabber.New(source, sink, &cfg.Download).Run(ctx, postURL, quality)
	if appErr != nil {
		utils.LogError(ctx, "Download failed", appErr)
		return appErr
	}

	fmt.Printf("Video downloaded to: %s\n", result.OutputPath)
	return nil
}

// exitCode maps a pipeline error onto the process exit status. Failures
// never exit zero; unknown errors count as invalid input.
func exitCode(err error) int {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return utils.ExitInvalidInput
}
