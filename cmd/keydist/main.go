package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/zombiecalypse/KeypointDistance/internal/adapters/googlemaps"
	"github.com/zombiecalypse/KeypointDistance/internal/adapters/input"
	"github.com/zombiecalypse/KeypointDistance/internal/config"
	"github.com/zombiecalypse/KeypointDistance/internal/domain"
	"github.com/zombiecalypse/KeypointDistance/internal/platform/obs"
	"github.com/zombiecalypse/KeypointDistance/internal/platform/retry"
	"github.com/zombiecalypse/KeypointDistance/internal/ports"
	"github.com/zombiecalypse/KeypointDistance/internal/services"
)

// main is the application composition root.
// It wires the Google Maps adapter behind the DurationProvider port and
// renders the sorted commute scores.
func main() {
	app := &cli.App{
		Name:  "keydist",
		Usage: "Rank candidate addresses by weighted commute time to key locations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "options",
				Usage:    "File with one candidate address per line",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "keypoints",
				Usage:    "File with the priority in first column and the key point in the rest",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: "driving",
				Usage: "Mode of transportation (driving, transit, bicycle, walking)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log every outbound request",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "keydist: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := zerolog.WarnLevel
	if c.Bool("verbose") {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found (using environment variables)")
	}

	mode, err := domain.ParseTravelMode(c.String("mode"))
	if err != nil {
		return err
	}

	options, err := input.ReadOptions(c.String("options"))
	if err != nil {
		return err
	}

	keypoints, err := input.ReadKeypoints(c.String("keypoints"))
	if err != nil {
		return err
	}

	provider := googlemaps.New(googlemaps.Config{
		APIKey:  os.Getenv("MAPS_API_KEY"),
		Timeout: config.GetDuration("REQUEST_TIMEOUT", 0),
		Retry: retry.Policy{
			MaxAttempts: config.GetInt("RETRY_MAX_ATTEMPTS", retry.DefaultMaxAttempts),
			BaseDelay:   config.GetDuration("RETRY_BASE_DELAY", retry.DefaultBaseDelay),
		},
	}, log)

	ctx := obs.WithRunID(c.Context, uuid.NewString())

	ranked, err := services.Rank(ctx, services.RankRequest{
		Options:   options,
		Keypoints: keypoints,
		Mode:      mode,
	}, provider)
	if err != nil {
		// Dump the last malformed response before propagating, so the
		// payload that broke parsing stays available for diagnosis.
		var dfe *ports.DataFormatError
		if errors.As(err, &dfe) && len(dfe.Raw) > 0 {
			fmt.Fprintln(os.Stderr, string(dfe.Raw))
		}
		return err
	}

	for _, r := range ranked {
		fmt.Printf("%.3f%20s\n", r.Hours, r.Address)
	}

	return nil
}
