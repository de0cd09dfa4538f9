package registry

import "math"

// TimingWindow is one band of a timing-window table: hits whose absolute
// deviation is at most MSBoundary milliseconds earn PointValue.
type TimingWindow struct {
	Name       string  `yaml:"name" json:"name"`
	MSBoundary float64 `yaml:"msBoundary" json:"msBoundary"`
	PointValue float64 `yaml:"pointValue" json:"pointValue"`
}

// Contains reports whether a hit deviating by deviationMS (either sign)
// falls inside the window.
func (w TimingWindow) Contains(deviationMS float64) bool {
	return math.Abs(deviationMS) <= w.MSBoundary
}

// WindowFor returns the tightest window containing deviationMS.
// Hits outside every window return false.
func (c *TimedVariantConfig) WindowFor(deviationMS float64) (TimingWindow, bool) {
	if !isFinite(deviationMS) {
		return TimingWindow{}, false
	}
	for _, w := range c.TimingWindows {
		if w.Contains(deviationMS) {
			return w, true
		}
	}
	return TimingWindow{}, false
}

// WidestBoundary returns the largest MSBoundary of the table.
func (c *TimedVariantConfig) WidestBoundary() float64 {
	if len(c.TimingWindows) == 0 {
		return 0
	}
	return c.TimingWindows[len(c.TimingWindows)-1].MSBoundary
}
