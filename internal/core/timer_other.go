//go:build !unix

package core

func cpuSeconds() float64 {
	return wallSeconds()
}
