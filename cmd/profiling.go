//go:build !pprof

package main

// startProfiling is a no-op unless built with -tags pprof.
func startProfiling() func() {
	return func() {}
}
