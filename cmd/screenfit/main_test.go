package main

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/screenfit"
)

func TestResolveProfilePathPrefersFlag(t *testing.T) {
	t.Setenv("SCREENFIT_PROFILE", "/env/profile.yaml")
	if got := resolveProfilePath("/flag/profile.yaml"); got != "/flag/profile.yaml" {
		t.Fatalf("expected flag to win, got %q", got)
	}
}

func TestResolveProfilePathFallsBackToEnv(t *testing.T) {
	t.Setenv("SCREENFIT_PROFILE", "  /env/profile.yaml  ")
	if got := resolveProfilePath(""); got != "/env/profile.yaml" {
		t.Fatalf("expected trimmed env value, got %q", got)
	}
}

func TestResolveProfilePathEmpty(t *testing.T) {
	t.Setenv("SCREENFIT_PROFILE", "")
	if got := resolveProfilePath(""); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}

func TestPlainLine(t *testing.T) {
	s := screenfit.OrientationState{
		Current:    screenfit.Landscape,
		Dimensions: screenfit.Dimensions{Width: 120, Height: 40},
	}
	cfg := screenfit.LayoutConfig{
		Columns:        3,
		Strategy:       screenfit.MultiColumn,
		ContentDensity: screenfit.DensitySpacious,
		DeviceClass:    screenfit.DeviceMedium,
	}
	line := plainLine(s, cfg)
	for _, want := range []string{"120x40", "landscape", "strategy=multi-column", "columns=3", "density=spacious", "device=medium", "transitioning=false"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}
