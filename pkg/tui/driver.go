// Package tui wraps interactive terminal prompts behind a small driver
// interface so command flows can be tested without a real terminal.
package tui

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("tui: prompt aborted")

// InputConfig configures a text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// PromptDriver abstracts the prompt implementation. The survey-backed driver
// is the default; tests substitute scripted drivers.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// NewDriver returns the default interactive driver.
func NewDriver() PromptDriver {
	return &surveyDriver{}
}
