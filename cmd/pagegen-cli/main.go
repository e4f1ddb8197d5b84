package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagegen/pkg/manifest"
	"github.com/goliatone/go-pagegen/pkg/progress"
	"github.com/goliatone/go-pagegen/pkg/termfx"
	"github.com/goliatone/go-pagegen/pkg/tui"
)

func main() {
	scaffold := flag.Bool("init", false, "interactively scaffold a page manifest and exit")
	output := flag.String("output", "", "output file overriding the manifest's output field (stdout if both empty)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*verbose)

	if *scaffold {
		if err := runInit(context.Background(), tui.NewDriver()); err != nil {
			log.Fatalf("init: %v", err)
		}
		return
	}

	manifests := flag.Args()
	if len(manifests) == 0 {
		log.Fatalf("usage: pagegen-cli [flags] manifest.yaml [manifest.yaml ...]")
	}
	if err := validateOutputFlag(*output, manifests); err != nil {
		log.Fatalf("%v", err)
	}

	var bar *progress.Bar
	if len(manifests) > 1 {
		bar = progress.New(os.Stderr, progress.WithLabel("Build"))
	}

	for i, path := range manifests {
		dest, err := build(path, *output, logger)
		if err != nil {
			log.Fatalf("build %s: %v", path, err)
		}
		if dest != "" {
			fmt.Fprintf(os.Stderr, "%s %s -> %s\n", termfx.Str("ok").Green().Bold(), path, dest)
		}
		if bar != nil {
			bar.Update(float64(i+1) / float64(len(manifests)))
		}
	}
}

// validateOutputFlag refuses a single -output destination for multiple
// manifests; each build would overwrite the previous one.
func validateOutputFlag(output string, manifests []string) error {
	if output != "" && len(manifests) > 1 {
		return fmt.Errorf("-output targets a single file; building %d manifests would overwrite it, use per-manifest output fields instead", len(manifests))
	}
	return nil
}

func build(path, override string, logger *slog.Logger) (string, error) {
	page, err := manifest.Load(path)
	if err != nil {
		return "", err
	}
	doc, err := page.Document()
	if err != nil {
		return "", err
	}
	html := doc.Render()

	dest := override
	if dest == "" {
		dest = page.Output
	}
	logger.Debug("built page", "manifest", path, "output", dest, "bytes", len(html))

	if dest == "" {
		fmt.Println(html)
		return "", nil
	}
	if err := os.WriteFile(dest, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return dest, nil
}

func runInit(ctx context.Context, prompts tui.PromptDriver) error {
	title, err := prompts.Input(ctx, tui.InputConfig{
		Message: "Page title",
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title is required")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	full, err := prompts.Confirm(ctx, tui.ConfirmConfig{
		Message: "Emit full document (doctype, html and head wrappers)?",
		Default: true,
	})
	if err != nil {
		return err
	}

	css, err := prompts.Input(ctx, tui.InputConfig{
		Message: "Stylesheets (space separated, optional)",
	})
	if err != nil {
		return err
	}
	scripts, err := prompts.Input(ctx, tui.InputConfig{
		Message: "Scripts (space separated, optional)",
	})
	if err != nil {
		return err
	}

	dest, err := prompts.Input(ctx, tui.InputConfig{
		Message: "Manifest path",
		Default: "page.yaml",
	})
	if err != nil {
		return err
	}

	page := manifest.Page{
		Title:       title,
		Lang:        "en",
		Full:        full,
		Stylesheets: strings.Fields(css),
		Scripts:     strings.Fields(scripts),
		Body: []manifest.Entry{
			{HTML: "<h1>" + title + "</h1>"},
		},
	}
	data, err := yaml.Marshal(page)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%s wrote %s\n", termfx.Str("ok").Green().Bold(), dest)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := os.Stderr
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	}))
}
