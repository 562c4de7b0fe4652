package util

// ZeroBytes overwrites b in place. Used on seed and key material once it is no
// longer needed.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
