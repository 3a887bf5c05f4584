package screenfit

// Direction orients stack and flex descriptors.
type Direction int

const (
	DirectionRow Direction = iota
	DirectionColumn
)

func (d Direction) String() string {
	if d == DirectionColumn {
		return "column"
	}
	return "row"
}

// GridLayout describes an auto-fit grid of fixed-size items.
type GridLayout struct {
	Columns    int
	ItemWidth  int
	ItemHeight int
	Gutter     int
	Margins    Margins
}

// StackLayout describes a linear arrangement with density-driven spacing.
type StackLayout struct {
	Direction Direction
	Spacing   int
	Margins   Margins
}

// FlexLayout describes a gap-separated arrangement that wraps when the
// strategy allows multiple columns.
type FlexLayout struct {
	Direction Direction
	Gap       int
	Wrap      bool
	Margins   Margins
}

// GridLayout fits as many itemWidth-wide columns as the usable width allows,
// never fewer than one. itemHeight <= 0 means square cells.
func (m *LayoutManager) GridLayout(itemWidth, itemHeight int) GridLayout {
	d := m.om.State().Dimensions
	cfg := m.ConfigFor(d)
	if itemHeight <= 0 {
		itemHeight = itemWidth
	}
	cols := 1
	if itemWidth > 0 {
		usable := d.Width - cfg.Margins.Horizontal()
		if usable > 0 {
			cols = (usable + cfg.Gutter) / (itemWidth + cfg.Gutter)
		}
		if cols < 1 {
			cols = 1
		}
		if cols > cfg.Columns && cfg.Strategy != MultiColumn {
			cols = cfg.Columns
		}
	}
	return GridLayout{
		Columns:    cols,
		ItemWidth:  itemWidth,
		ItemHeight: itemHeight,
		Gutter:     cfg.Gutter,
		Margins:    cfg.Margins,
	}
}

// StackLayout arranges children along dir with spacing derived from the
// current density: half a gutter when compact, one gutter when comfortable,
// two when spacious.
func (m *LayoutManager) StackLayout(dir Direction) StackLayout {
	cfg := m.Config()
	spacing := cfg.Gutter
	switch cfg.ContentDensity {
	case DensityCompact:
		spacing = cfg.Gutter / 2
		if spacing < 1 {
			spacing = 1
		}
	case DensitySpacious:
		spacing = cfg.Gutter * 2
	}
	return StackLayout{
		Direction: dir,
		Spacing:   spacing,
		Margins:   cfg.Margins,
	}
}

// FlexLayout arranges children along dir with the tier's gutter as the gap,
// wrapping only under a multi-column strategy.
func (m *LayoutManager) FlexLayout(dir Direction) FlexLayout {
	cfg := m.Config()
	return FlexLayout{
		Direction: dir,
		Gap:       cfg.Gutter,
		Wrap:      cfg.Strategy == MultiColumn,
		Margins:   cfg.Margins,
	}
}
