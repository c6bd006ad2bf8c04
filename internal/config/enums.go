package config

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/rook-computer/lcdui/internal/ui"
)

var (
	animations = []ui.AnimationDirection{ui.SlideUp, ui.SlideDown, ui.SlideLeft, ui.SlideRight}
	positions  = []ui.IndicatorPosition{ui.Top, ui.Right, ui.Bottom, ui.Left}
	directions = []ui.IndicatorDirection{ui.LeftRight, ui.RightLeft}
)

func ParseAnimation(name string) (ui.AnimationDirection, error) {
	return parseEnum("animation", name, animations)
}

func ParseIndicatorPosition(name string) (ui.IndicatorPosition, error) {
	return parseEnum("indicator_position", name, positions)
}

func ParseIndicatorDirection(name string) (ui.IndicatorDirection, error) {
	return parseEnum("indicator_direction", name, directions)
}

func parseEnum[T fmt.Stringer](key, name string, values []T) (T, error) {
	want := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "-", "_")))
	options := make([]string, len(values))
	for i, v := range values {
		if v.String() == want {
			return v, nil
		}
		options[i] = v.String()
	}
	var zero T
	if s, ok := suggest(options, want); ok {
		return zero, fmt.Errorf("%s: unknown value %q, did you mean %q?", key, name, s)
	}
	return zero, fmt.Errorf("%s: unknown value %q (want one of %s)", key, name, strings.Join(options, ", "))
}

func suggest(options []string, want string) (string, bool) {
	for _, option := range options {
		if levenshtein.Distance(want, option, nil) < 3 {
			return option, true
		}
	}
	return "", false
}
