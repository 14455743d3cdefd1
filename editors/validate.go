package editors

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/BaSui01/lightx-go/types"
)

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }

// Float64 returns a pointer to f, for optional request fields.
func Float64(f float64) *float64 { return &f }

var hexColorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// designResolutions are the aspect ratios the ai-design endpoint accepts.
var designResolutions = map[string]bool{
	"1:1":  true,
	"9:16": true,
	"3:4":  true,
	"2:3":  true,
	"16:9": true,
	"4:3":  true,
}

func requireImageURL(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return types.NewError(types.ErrValidation, name+" must not be empty")
	}
	return nil
}

func requirePrompt(name, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return types.NewError(types.ErrValidation, name+" must not be empty or blank")
	}
	if n := utf8.RuneCountInString(prompt); n > types.MaxPromptLength {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("%s is %d characters, the limit is %d", name, n, types.MaxPromptLength))
	}
	return nil
}

func optionalPrompt(name string, prompt *string) error {
	if prompt == nil {
		return nil
	}
	return requirePrompt(name, *prompt)
}

func requireStrength(name string, v float64) error {
	if v < 0 || v > 1 {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("%s must be between 0.0 and 1.0, got %g", name, v))
	}
	return nil
}

func optionalStrength(name string, v *float64) error {
	if v == nil {
		return nil
	}
	return requireStrength(name, *v)
}

func requireHexColor(name, value string) error {
	if !hexColorRe.MatchString(value) {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("%s must be a hex color like #1A2B3C, got %q", name, value))
	}
	return nil
}

func requirePadding(name string, v int) error {
	if v < 0 {
		return types.NewError(types.ErrValidation,
			fmt.Sprintf("%s must not be negative, got %d", name, v))
	}
	return nil
}

// firstErr returns the first non-nil error, so Validate methods read as
// a flat checklist.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
