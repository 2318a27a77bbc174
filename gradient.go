package montepi

// AgeWeight returns the display weight for the point at index i of a
// most-recent-first history of length n. The newest point (index 0) weighs
// 1; weights fall off linearly with age, normalized over the sequence
// length, so the oldest point weighs 1/n. Out-of-range arguments return 0.
func AgeWeight(i, n int) float64 {
	if n <= 0 || i < 0 || i >= n {
		return 0
	}
	return float64(n-i) / float64(n)
}

// Faded returns c scaled toward transparency by weight w in [0, 1]. Older
// points pass lower weights and recede into the background.
func (c Color) Faded(w float64) Color {
	w = clamp01(w)
	c.A *= w
	return c
}
