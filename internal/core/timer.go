package core

import "time"

var processStart = time.Now()

// Timer measures CPU seconds spent by the process where the platform
// exposes them, wall-clock seconds otherwise.
type Timer struct {
	mark float64
}

func NewTimer() *Timer {
	return &Timer{mark: cpuSeconds()}
}

func (t *Timer) Reset() {
	t.mark = cpuSeconds()
}

func (t *Timer) Elapsed() float64 {
	return cpuSeconds() - t.mark
}

func wallSeconds() float64 {
	return time.Since(processStart).Seconds()
}
