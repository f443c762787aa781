package analyzer

// Options configures the analyzer behavior.
type Options struct {
	// MaxParallel is the max number of files to parse in parallel (0 = default).
	MaxParallel int
}

// DefaultOptions returns default analyzer options.
func DefaultOptions() Options {
	return Options{
		MaxParallel: 0, // use runtime.NumCPU in the analyzer
	}
}
