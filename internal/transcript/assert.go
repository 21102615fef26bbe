//go:build qdadebug

package transcript

import "fmt"

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("transcript: "+format, args...))
	}
}
