package builder

// Default option values, matching the reference parser's setDefaultOptions.
const (
	// DefaultSmallStep is the rank increment applied after every item in a
	// want list.
	DefaultSmallStep uint64 = 1
	// DefaultBigStep is the rank increment applied in addition to
	// DefaultSmallStep when a semicolon separates priority tiers.
	DefaultBigStep uint64 = 9
	// DefaultNonTradeCost is the edge cost used for every item's self-loop
	// and for every edge leaving a dummy item. It is far above any
	// rank-derived cost, so the matcher keeps an item only when no real
	// trade is available for it.
	DefaultNonTradeCost uint64 = 1_000_000_000
	// DefaultIterations is the number of randomized shuffles attempted when
	// no explicit iteration count is configured.
	DefaultIterations = 1
	// DefaultRandSeed is used when no seed is supplied; callers wanting
	// fresh randomness should pass a seed derived from the current time
	// themselves.
	DefaultRandSeed int64 = 0
)

// scaledPriorityRange is the factor SCALED_PRIORITIES rescales an item's
// non-self-loop edge costs by: 1 + (cost-1)*scaledPriorityRange/n.
const scaledPriorityRange = 2520
