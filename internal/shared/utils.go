// Package shared provides small helpers for handling sensitive values.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is used to drop secrets such as the access token read from the
// terminal once they have been copied where they are needed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
