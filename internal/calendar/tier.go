package calendar

// Range is an inclusive count range. Max < 0 means unbounded above.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n falls within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && (r.Max < 0 || n <= r.Max)
}

// Tiers are the colour buckets of the month view.
var Tiers = []Range{
	{0, 4}, {5, 9}, {10, 14}, {15, 19},
	{20, 24}, {25, 29}, {30, 34}, {35, -1},
}

// Tier colours, indexed like Tiers.
var (
	ArrivalColors = []string{
		"#e8f5e9", "#c8e6c9", "#a5d6a7", "#81c784",
		"#66bb6a", "#4caf50", "#388e3c", "#2e7d32",
	}
	DepartureColors = []string{
		"#ffebee", "#ffcdd2", "#ef9a9a", "#e57373",
		"#ef5350", "#f44336", "#e53935", "#c62828",
	}
)

// Tier returns the index of the range containing count.
func Tier(count int) int {
	for i, r := range Tiers {
		if r.Contains(count) {
			return i
		}
	}
	return 0
}
