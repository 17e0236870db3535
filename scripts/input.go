package scripts

// AxisReader is the host's input source. Axis returns a value in [-1, 1]
// for a named virtual axis such as "Vertical".
type AxisReader interface {
	Axis(name string) float32
}

// AxisFunc adapts a plain function to AxisReader.
type AxisFunc func(name string) float32

func (f AxisFunc) Axis(name string) float32 {
	return f(name)
}

// StaticAxes holds fixed axis values, used by headless runs and tests.
type StaticAxes map[string]float32

func (s StaticAxes) Axis(name string) float32 {
	return s[name]
}
