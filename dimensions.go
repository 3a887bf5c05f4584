package screenfit

import "fmt"

// Orientation is the coarse rotation of the surface.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Dimensions is a unit-agnostic surface size. Terminal hosts feed cell
// counts, pixel hosts feed pixels; the breakpoint table gives the numbers
// meaning.
type Dimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Valid reports whether both components are positive. Managers ignore
// invalid dimensions and keep their last-known-good state.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Orientation derives the rotation: landscape iff width > height. A square
// surface counts as portrait.
func (d Dimensions) Orientation() Orientation {
	if d.Width > d.Height {
		return Landscape
	}
	return Portrait
}

// Min returns the smaller component. Device classification keys off this so
// rotating the surface never changes the class.
func (d Dimensions) Min() int {
	if d.Width < d.Height {
		return d.Width
	}
	return d.Height
}

// AspectRatio returns width/height, or 0 for invalid dimensions.
func (d Dimensions) AspectRatio() float64 {
	if !d.Valid() {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
