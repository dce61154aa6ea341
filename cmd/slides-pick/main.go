// Command slides-pick lets the user select a presentation through the
// browser picker and prints a short summary of the chosen presentation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/smorand/google-slides-client/internal/auth"
	"github.com/smorand/google-slides-client/internal/config"
	"github.com/smorand/google-slides-client/internal/permissions"
	"github.com/smorand/google-slides-client/internal/picker"
	"github.com/smorand/google-slides-client/internal/slides"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envPath := flag.String("env", "", "path to .env file (default .env)")
	timeout := flag.Duration("timeout", 5*time.Minute, "picker and authorization timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*envPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*(*timeout))
	defer cancel()

	creds, err := cfg.ReadCredentials()
	if err != nil {
		return err
	}
	authorizer, err := auth.FromCredentialsJSON(creds, auth.NewFileStore(cfg.TokenFile))
	if err != nil {
		return err
	}
	tokenSource, err := authorizer.TokenSource(ctx)
	if err != nil {
		return err
	}

	pick, err := picker.New(picker.Config{
		ClientID: cfg.PickerClientID,
		APIKey:   cfg.PickerAPIKey,
		AppID:    cfg.PickerAppID,
		Port:     cfg.PickerPort,
		Timeout:  *timeout,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	presentationID, err := pick.Run(ctx)
	if err != nil {
		return err
	}

	checker, err := permissions.NewChecker(ctx, permissions.CheckerConfig{
		TokenSource: tokenSource,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	level, err := checker.Check(ctx, presentationID)
	if err != nil {
		return err
	}

	clientConfig := slides.DefaultConfig()
	clientConfig.TokenSource = tokenSource
	clientConfig.Logger = logger
	client := slides.New(clientConfig)

	presentation, err := client.Get(ctx, presentationID)
	if err != nil {
		return err
	}

	fmt.Printf("Title:       %s\n", presentation.Title)
	fmt.Printf("ID:          %s\n", presentation.PresentationID)
	fmt.Printf("Revision:    %s\n", presentation.RevisionID)
	fmt.Printf("Slides:      %d\n", len(presentation.Slides))
	fmt.Printf("Access:      %s\n", level)
	return nil
}
