package fontweight

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported font format")
	ErrNoWeight          = errors.New("weight could not be determined")
	ErrToolMissing       = errors.New("instancer tool not available")
)

// Face is the weight metadata of one font.
type Face struct {
	Path      string
	Index     int
	Family    string
	Subfamily string

	// Weight is the resolved weight class; zero when unknown.
	Weight     int
	OS2Weight  int
	NameWeight int

	Axes      []Axis
	Instances []Instance
}

// Instance is a named instance of a variable font.
type Instance struct {
	Name        string
	Coordinates map[string]float64
}

// Variable reports whether the face has a wght axis.
func (f Face) Variable() bool {
	_, ok := f.WeightAxis()
	return ok
}

// WeightAxis returns the wght axis, if any.
func (f Face) WeightAxis() (Axis, bool) {
	for _, a := range f.Axes {
		if a.Tag == tagWeightAxis {
			return a, true
		}
	}
	return Axis{}, false
}

// WeightLabel is the human readable weight, "Unknown" when unresolved.
func (f Face) WeightLabel() string {
	if f.Weight == 0 {
		return "Unknown"
	}
	return WeightName(f.Weight)
}
