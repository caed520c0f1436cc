package blockcopy

import "bytesbuf"

func encode(samples []int16) []byte {
	buf := make([]byte, 2*len(samples))

	bytesbuf.BlockCopy(samples, 0, buf, 0, len(samples)) // want `Count argument is the element count of 'samples', not a byte count \(ag:cnt\)`

	return buf
}

func raw(data []byte) []byte {
	buf := make([]byte, len(data))

	bytesbuf.BlockCopy(data, 0, buf, 0, len(data))

	return buf
}

func viaLocal(samples []int32) []byte {
	buf := make([]byte, 4*len(samples))
	n := len(samples)

	bytesbuf.BlockCopy(samples, 0, buf, 0, n) // want `Count argument is the element count of 'samples', not a byte count \(ag:cnt\)`

	return buf
}

func scaled(samples []int32) []byte {
	buf := make([]byte, 4*len(samples))

	bytesbuf.BlockCopy(samples, 0, buf, 0, 4*len(samples))

	return buf
}

func unrelated(samples []int32, other []float64) {
	buf := make([]byte, 8*len(other))

	bytesbuf.BlockCopy(samples, 0, buf, 0, len(other))
}

func converted(s string) []byte {
	buf := make([]byte, len(s))

	bytesbuf.BlockCopy([]byte(s), 0, buf, 0, len(s))

	return buf
}

func destination(words []uint32, packed []byte) {
	bytesbuf.BlockCopy(packed, 0, words, 0, len(words)) // want `Count argument is the element count of 'words', not a byte count \(ag:cnt\)`
}
