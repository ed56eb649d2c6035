package domain

// StrategyTier caps the logic complexity a caller wants applied.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // naked/hidden singles
	StrategyPairs                        // naked pairs
	StrategyAdvanced                     // pointing/claiming, triples
	StrategyXWing                        // fish patterns
)

// ParseStrategyTier maps a user-facing name to a tier, defaulting to XWing
// so the full technique list runs unless the caller narrows it.
func ParseStrategyTier(s string) StrategyTier {
	switch s {
	case "singles":
		return StrategySingles
	case "pairs":
		return StrategyPairs
	case "advanced":
		return StrategyAdvanced
	default:
		return StrategyXWing
	}
}
