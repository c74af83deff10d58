package scene

import "time"

// Fade is an opacity ramp restarted on genre selection.
// The zero value is fully transparent; use NewFade for an opaque start.
type Fade struct {
	value float64
}

// NewFade returns a fully opaque fade.
func NewFade() *Fade {
	return &Fade{value: 1}
}

// Reset restarts the ramp from 0.
func (f *Fade) Reset() {
	f.value = 0
}

// Advance raises the value by dt in seconds, up to 1.
func (f *Fade) Advance(dt time.Duration) {
	f.value = min(1, f.value+dt.Seconds())
}

// Value returns the current opacity in [0, 1].
func (f *Fade) Value() float64 {
	return f.value
}

// Done reports whether the ramp reached 1.
func (f *Fade) Done() bool {
	return f.value >= 1
}
