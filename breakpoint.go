package screenfit

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Strategy is the coarse layout mode selected for the current width.
type Strategy int

const (
	SingleColumn Strategy = iota
	TwoColumn
	MultiColumn
)

func (s Strategy) String() string {
	switch s {
	case TwoColumn:
		return "two-column"
	case MultiColumn:
		return "multi-column"
	default:
		return "single-column"
	}
}

// ParseStrategy converts the wire form back into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "single-column":
		return SingleColumn, nil
	case "two-column":
		return TwoColumn, nil
	case "multi-column":
		return MultiColumn, nil
	}
	return SingleColumn, fmt.Errorf("unknown strategy %q", s)
}

func (s Strategy) MarshalYAML() (interface{}, error) { return s.String(), nil }

func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseStrategy(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Density is how much breathing room the layout gives content.
type Density int

const (
	DensityCompact Density = iota
	DensityComfortable
	DensitySpacious
)

func (d Density) String() string {
	switch d {
	case DensityComfortable:
		return "comfortable"
	case DensitySpacious:
		return "spacious"
	default:
		return "compact"
	}
}

// ParseDensity converts the wire form back into a Density.
func ParseDensity(s string) (Density, error) {
	switch s {
	case "compact":
		return DensityCompact, nil
	case "comfortable":
		return DensityComfortable, nil
	case "spacious":
		return DensitySpacious, nil
	}
	return DensityCompact, fmt.Errorf("unknown density %q", s)
}

func (d Density) MarshalYAML() (interface{}, error) { return d.String(), nil }

func (d *Density) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseDensity(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NavigationPattern names how primary navigation should be presented at a
// given tier. The built-ins cover the common shapes; profiles may invent
// their own names.
type NavigationPattern string

const (
	NavFooter  NavigationPattern = "footer"
	NavSidebar NavigationPattern = "sidebar"
	NavSplit   NavigationPattern = "split"
)

// DeviceClass is a rotation-invariant size class derived from the smallest
// dimension of the surface.
type DeviceClass int

const (
	DeviceCompact DeviceClass = iota
	DeviceMedium
	DeviceExpanded
)

func (c DeviceClass) String() string {
	switch c {
	case DeviceMedium:
		return "medium"
	case DeviceExpanded:
		return "expanded"
	default:
		return "compact"
	}
}

// Breakpoint is one tier of a profile's table. A width w resolves to the
// tier with the greatest MinWidth <= w, so a width exactly on a boundary
// belongs to the wider tier.
type Breakpoint struct {
	// Name labels the tier in profiles and diagnostics.
	Name string `yaml:"name"`

	// MinWidth is the inclusive lower bound of the tier.
	MinWidth int `yaml:"min_width"`

	Strategy Strategy `yaml:"strategy"`

	// Columns is the base column count for the tier.
	Columns int `yaml:"columns"`

	// ColumnStep adds one column for every ColumnStep units of width beyond
	// MinWidth. Zero disables growth.
	ColumnStep int `yaml:"column_step,omitempty"`

	// MaxColumns caps step growth. Zero means no cap.
	MaxColumns int `yaml:"max_columns,omitempty"`

	Gutter            int               `yaml:"gutter"`
	Margin            int               `yaml:"margin"`
	TouchTargetSize   int               `yaml:"touch_target_size"`
	ContentDensity    Density           `yaml:"content_density"`
	NavigationPattern NavigationPattern `yaml:"navigation_pattern"`
}

// columnsAt applies step growth for the given width.
func (b Breakpoint) columnsAt(width int) int {
	cols := b.Columns
	if cols < 1 {
		cols = 1
	}
	if b.ColumnStep > 0 && width > b.MinWidth {
		cols += (width - b.MinWidth) / b.ColumnStep
	}
	if b.MaxColumns > 0 && cols > b.MaxColumns {
		cols = b.MaxColumns
	}
	return cols
}

// Profile is the complete tunable surface: a named breakpoint table plus
// the settle delay used by orientation transitions.
type Profile struct {
	Name        string
	SettleDelay time.Duration
	Breakpoints []Breakpoint
}

// Validate checks the structural invariants of the table. Derivation
// assumes a validated profile.
func (p Profile) Validate() error {
	if len(p.Breakpoints) == 0 {
		return ErrNoBreakpoints
	}
	if p.Breakpoints[0].MinWidth != 0 {
		return fmt.Errorf("breakpoint %q: %w", p.Breakpoints[0].Name, ErrBaseBreakpoint)
	}
	for i, bp := range p.Breakpoints {
		if bp.Columns < 1 {
			return fmt.Errorf("breakpoint %q: %w", bp.Name, ErrBreakpointColumns)
		}
		if i == 0 {
			continue
		}
		if bp.MinWidth <= p.Breakpoints[i-1].MinWidth {
			return fmt.Errorf("breakpoint %q: %w", bp.Name, ErrUnsortedBreakpoints)
		}
		if bp.Strategy < p.Breakpoints[i-1].Strategy {
			return fmt.Errorf("breakpoint %q: %w", bp.Name, ErrStrategyOrder)
		}
	}
	return nil
}

// Resolve returns the tier for the given width. Negative widths resolve to
// the base tier. Resolve assumes a non-empty table; call Validate first for
// untrusted profiles.
func (p Profile) Resolve(width int) Breakpoint {
	tier := p.Breakpoints[0]
	for _, bp := range p.Breakpoints[1:] {
		if width < bp.MinWidth {
			break
		}
		tier = bp
	}
	return tier
}

// DeviceClass classifies the surface by its smallest dimension, so a
// rotation (swapping width and height) never changes the class.
func (p Profile) DeviceClass(d Dimensions) DeviceClass {
	switch p.Resolve(d.Min()).Strategy {
	case MultiColumn:
		return DeviceExpanded
	case TwoColumn:
		return DeviceMedium
	default:
		return DeviceCompact
	}
}

// DefaultSettleDelay is used when neither an option nor a profile supplies
// one.
const DefaultSettleDelay = 150 * time.Millisecond

// DefaultProfile returns the pixel-metric table: single-column below 600,
// two-column from 600, multi-column from 900 with growth every 300 units.
func DefaultProfile() Profile {
	return Profile{
		Name:        "default",
		SettleDelay: DefaultSettleDelay,
		Breakpoints: []Breakpoint{
			{
				Name:              "compact",
				MinWidth:          0,
				Strategy:          SingleColumn,
				Columns:           1,
				Gutter:            8,
				Margin:            16,
				TouchTargetSize:   48,
				ContentDensity:    DensityCompact,
				NavigationPattern: NavFooter,
			},
			{
				Name:              "medium",
				MinWidth:          600,
				Strategy:          TwoColumn,
				Columns:           2,
				Gutter:            12,
				Margin:            24,
				TouchTargetSize:   48,
				ContentDensity:    DensityComfortable,
				NavigationPattern: NavSidebar,
			},
			{
				Name:              "expanded",
				MinWidth:          900,
				Strategy:          MultiColumn,
				Columns:           3,
				ColumnStep:        300,
				MaxColumns:        6,
				Gutter:            16,
				Margin:            32,
				TouchTargetSize:   44,
				ContentDensity:    DensitySpacious,
				NavigationPattern: NavSplit,
			},
		},
	}
}

// TerminalProfile returns a cell-metric table tuned for terminal hosts:
// single-column below 80 columns, two-column from 80, multi-column from 120.
func TerminalProfile() Profile {
	return Profile{
		Name:        "terminal",
		SettleDelay: DefaultSettleDelay,
		Breakpoints: []Breakpoint{
			{
				Name:              "narrow",
				MinWidth:          0,
				Strategy:          SingleColumn,
				Columns:           1,
				Gutter:            1,
				Margin:            1,
				TouchTargetSize:   1,
				ContentDensity:    DensityCompact,
				NavigationPattern: NavFooter,
			},
			{
				Name:              "standard",
				MinWidth:          80,
				Strategy:          TwoColumn,
				Columns:           2,
				Gutter:            2,
				Margin:            1,
				TouchTargetSize:   1,
				ContentDensity:    DensityComfortable,
				NavigationPattern: NavSidebar,
			},
			{
				Name:              "wide",
				MinWidth:          120,
				Strategy:          MultiColumn,
				Columns:           3,
				ColumnStep:        40,
				MaxColumns:        5,
				Gutter:            2,
				Margin:            2,
				TouchTargetSize:   1,
				ContentDensity:    DensitySpacious,
				NavigationPattern: NavSplit,
			},
		},
	}
}
