//go:build !qdadebug

package transcript

func assertf(bool, string, ...any) {}
