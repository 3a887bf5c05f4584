// Package testutil provides builders and fixtures shared by tests.
package testutil

import "github.com/akyairhashvil/screenfit"

// Standard terminal sizes used across rendering tests.
var (
	SizeMinimal  = screenfit.Dimensions{Width: 80, Height: 24}
	SizeStandard = screenfit.Dimensions{Width: 120, Height: 40}
	SizeLarge    = screenfit.Dimensions{Width: 160, Height: 50}
)

// Scenario device sizes from the mobile world, in pixels.
var (
	SizePhonePortrait   = screenfit.Dimensions{Width: 375, Height: 812}
	SizeTabletPortrait  = screenfit.Dimensions{Width: 820, Height: 1180}
	SizeLaptopLandscape = screenfit.Dimensions{Width: 1366, Height: 1024}
)

// TerminalSizes lists the standard terminal sizes for table-driven tests.
func TerminalSizes() []screenfit.Dimensions {
	return []screenfit.Dimensions{SizeMinimal, SizeStandard, SizeLarge}
}
