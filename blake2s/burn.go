package blake2s

import "runtime"

// burn overwrites b with zeros. It is kept out of line and b is kept alive
// past the loop so the stores survive even when the caller's buffer is about
// to go out of scope.
//
//go:noinline
func burn(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
