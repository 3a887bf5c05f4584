package testutil

import (
	"time"

	"github.com/akyairhashvil/screenfit"
)

// ProfileBuilder provides a fluent API for creating test profiles.
type ProfileBuilder struct {
	profile screenfit.Profile
}

func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		profile: screenfit.Profile{
			Name:        "test",
			SettleDelay: 10 * time.Millisecond,
		},
	}
}

func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.profile.Name = name
	return b
}

func (b *ProfileBuilder) WithSettleDelay(d time.Duration) *ProfileBuilder {
	b.profile.SettleDelay = d
	return b
}

// WithTier appends a breakpoint with sensible defaults for the remaining
// fields.
func (b *ProfileBuilder) WithTier(name string, minWidth, columns int, s screenfit.Strategy) *ProfileBuilder {
	b.profile.Breakpoints = append(b.profile.Breakpoints, screenfit.Breakpoint{
		Name:              name,
		MinWidth:          minWidth,
		Strategy:          s,
		Columns:           columns,
		Gutter:            2,
		Margin:            1,
		TouchTargetSize:   1,
		ContentDensity:    screenfit.DensityComfortable,
		NavigationPattern: screenfit.NavFooter,
	})
	return b
}

func (b *ProfileBuilder) Build() screenfit.Profile {
	return b.profile
}
