package driven

// RandomSource supplies uniformly distributed values in [0,1).
// Implementations must be safe for concurrent use.
type RandomSource interface {
	Float64() float64
}

// IDSource issues identity tokens for particles.
type IDSource interface {
	NewID() string
}
