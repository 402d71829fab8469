package encoding

// zigzag maps signed values to unsigned ones with small magnitudes staying
// small: 0, -1, 1, -2, 2 ... become 0, 1, 2, 3, 4 ...
func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

// unzigzag reverses zigzag.
func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}
