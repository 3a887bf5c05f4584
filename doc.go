// Package screenfit derives responsive layout decisions from the size of a
// display surface and notifies subscribers when they change.
//
// The package tracks two kinds of state. An OrientationManager owns the
// surface dimensions and their coarse orientation (portrait or landscape),
// including a settle window after each change during which the state is
// marked as transitioning. A LayoutManager maps the current dimensions onto
// a discrete LayoutConfig (column count, gutters, margins, density,
// navigation pattern) through a breakpoint table, and offers pure helpers
// for grid, stack, and flex layout descriptors.
//
// Managers are plain values you construct and pass around; there is no
// package-level state. Dimensions are unit-agnostic: terminal hosts feed
// cell counts, pixel hosts feed pixels, and the breakpoint table decides
// what the numbers mean. TerminalProfile and DefaultProfile provide tables
// tuned for each world.
//
// # Basic usage
//
//	om := screenfit.NewOrientationManager(screenfit.WithSettleDelay(150 * time.Millisecond))
//	lm := screenfit.NewLayoutManager(om, screenfit.WithLayoutProfile(screenfit.TerminalProfile()))
//
//	cancel := lm.Subscribe(func(cfg screenfit.LayoutConfig) {
//		// re-render with cfg.Columns, cfg.Strategy, ...
//	})
//	defer cancel()
//
//	om.SetDimensions(screenfit.Dimensions{Width: 120, Height: 40})
//
// Hosts that expose a resize stream can hand it over instead of pushing
// manually:
//
//	src, err := screenfit.NewTerminalSource(os.Stdout)
//	if err != nil {
//		// not a tty
//	}
//	go om.Watch(ctx, src)
//
// Bubble Tea programs should use the teabind subpackage, which forwards
// tea.WindowSizeMsg into the managers and turns notifications back into
// messages.
package screenfit
