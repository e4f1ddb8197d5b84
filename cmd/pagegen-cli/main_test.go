package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-pagegen/pkg/manifest"
	"github.com/goliatone/go-pagegen/pkg/tui"
)

type scriptedDriver struct {
	inputs   []string
	confirms []bool
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if out == "" {
		out = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return cfg.Default, nil
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	return cfg.DefaultIndex, nil
}

func TestRunInitWritesLoadableManifest(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "page.yaml")
	driver := &scriptedDriver{
		inputs:   []string{"My Page", "site.css", "app.js", dest},
		confirms: []bool{true},
	}

	if err := runInit(context.Background(), driver); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	page, err := manifest.Load(dest)
	if err != nil {
		t.Fatalf("scaffolded manifest does not load: %v", err)
	}
	if page.Title != "My Page" || !page.Full {
		t.Fatalf("unexpected page: %+v", page)
	}
	if len(page.Stylesheets) != 1 || page.Stylesheets[0] != "site.css" {
		t.Fatalf("stylesheets mismatch: %v", page.Stylesheets)
	}
}

func TestRunInitRejectsEmptyTitle(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"   "}}
	if err := runInit(context.Background(), driver); err == nil {
		t.Fatal("expected validation error for empty title")
	}
}

func TestValidateOutputFlag(t *testing.T) {
	if err := validateOutputFlag("out.html", []string{"a.yaml"}); err != nil {
		t.Fatalf("single manifest with -output should pass: %v", err)
	}
	if err := validateOutputFlag("", []string{"a.yaml", "b.yaml"}); err != nil {
		t.Fatalf("multiple manifests without -output should pass: %v", err)
	}
	if err := validateOutputFlag("out.html", []string{"a.yaml", "b.yaml"}); err == nil {
		t.Fatal("expected error: one -output path for multiple manifests")
	}
}

func TestBuildWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "page.yaml")
	outputPath := filepath.Join(dir, "page.html")
	raw := "title: T\nfull: true\nbody:\n  - html: \"<p>hi</p>\"\n"
	if err := os.WriteFile(manifestPath, []byte(raw), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	dest, err := build(manifestPath, outputPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if dest != outputPath {
		t.Fatalf("dest = %q, want %q", dest, outputPath)
	}

	html, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(html), "<p>hi</p>") {
		t.Fatalf("unexpected output:\n%s", html)
	}
}
