// Package bytesbuf is a byte-oriented copy helper for the analyzer tests.
package bytesbuf

// BlockCopy copies n bytes from src at byte offset srcOff into dst at
// byte offset dstOff.
func BlockCopy(src any, srcOff int, dst any, dstOff int, n int) {
	_, _, _, _, _ = src, srcOff, dst, dstOff, n
}
