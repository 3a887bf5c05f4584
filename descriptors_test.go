package screenfit

import (
	"testing"
	"time"
)

func TestGridLayoutAutoFit(t *testing.T) {
	om, lm := newTestManagers(t)
	om.SetDimensions(Dimensions{Width: 1366, Height: 1024})

	// expanded tier: margin 32 each side, gutter 16. usable = 1366-64 = 1302;
	// (1302+16)/(300+16) = 4 columns.
	grid := lm.GridLayout(300, 0)
	if grid.Columns != 4 {
		t.Fatalf("expected 4 columns, got %d", grid.Columns)
	}
	if grid.ItemHeight != 300 {
		t.Fatalf("expected square cells for itemHeight 0, got %d", grid.ItemHeight)
	}
	if grid.Gutter != 16 {
		t.Fatalf("expected tier gutter 16, got %d", grid.Gutter)
	}
}

func TestGridLayoutNeverBelowOneColumn(t *testing.T) {
	om, lm := newTestManagers(t)
	om.SetDimensions(Dimensions{Width: 375, Height: 812})

	grid := lm.GridLayout(5000, 100)
	if grid.Columns != 1 {
		t.Fatalf("expected 1 column for oversized items, got %d", grid.Columns)
	}
}

func TestGridLayoutRespectsStrategyCap(t *testing.T) {
	om, lm := newTestManagers(t)
	om.SetDimensions(Dimensions{Width: 375, Height: 812})

	// Tiny items would fit many times; the single-column tier caps it.
	grid := lm.GridLayout(40, 40)
	if grid.Columns != 1 {
		t.Fatalf("expected single-column tier to cap grid at 1, got %d", grid.Columns)
	}
}

func TestStackLayoutSpacingFollowsDensity(t *testing.T) {
	om, lm := newTestManagers(t)

	om.SetDimensions(Dimensions{Width: 375, Height: 812})
	compact := lm.StackLayout(DirectionColumn)
	if compact.Spacing != 4 {
		t.Fatalf("expected half-gutter spacing 4 when compact, got %d", compact.Spacing)
	}
	if compact.Direction != DirectionColumn {
		t.Fatalf("expected column direction, got %s", compact.Direction)
	}

	om.SetDimensions(Dimensions{Width: 820, Height: 1180})
	comfortable := lm.StackLayout(DirectionRow)
	if comfortable.Spacing != 12 {
		t.Fatalf("expected gutter spacing 12 when comfortable, got %d", comfortable.Spacing)
	}

	om.SetDimensions(Dimensions{Width: 1366, Height: 1024})
	spacious := lm.StackLayout(DirectionRow)
	if spacious.Spacing != 32 {
		t.Fatalf("expected double-gutter spacing 32 when spacious, got %d", spacious.Spacing)
	}
}

func TestFlexLayoutWrapsOnlyInMultiColumn(t *testing.T) {
	om, lm := newTestManagers(t)

	om.SetDimensions(Dimensions{Width: 375, Height: 812})
	if lm.FlexLayout(DirectionRow).Wrap {
		t.Fatalf("expected no wrap in single-column strategy")
	}

	om.SetDimensions(Dimensions{Width: 1366, Height: 1024})
	flex := lm.FlexLayout(DirectionRow)
	if !flex.Wrap {
		t.Fatalf("expected wrap in multi-column strategy")
	}
	if flex.Gap != 16 {
		t.Fatalf("expected tier gutter as gap, got %d", flex.Gap)
	}
}

func TestDescriptorsAreSideEffectFree(t *testing.T) {
	om := NewOrientationManager(WithSettleDelay(time.Hour))
	lm := NewLayoutManager(om)
	t.Cleanup(func() {
		_ = lm.Close()
		_ = om.Close()
	})
	om.SetDimensions(Dimensions{Width: 820, Height: 1180})

	calls := 0
	t.Cleanup(lm.Subscribe(func(LayoutConfig) { calls++ }))

	lm.GridLayout(100, 100)
	lm.StackLayout(DirectionRow)
	lm.FlexLayout(DirectionColumn)

	if calls != 0 {
		t.Fatalf("expected descriptor constructors not to emit, got %d emissions", calls)
	}
	before := lm.Config()
	lm.GridLayout(100, 100)
	if lm.Config() != before {
		t.Fatalf("expected config unchanged by descriptor construction")
	}
}
