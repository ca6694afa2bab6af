package valuation

type reliabilityTier struct {
	Make  string
	Score int
}

// DefaultReliability is used for makes missing from the tier table.
const DefaultReliability = 65

var reliabilityTiers = []reliabilityTier{
	{"toyota", 95},
	{"lexus", 93},
	{"honda", 92},
	{"acura", 88},
	{"mazda", 90},
	{"subaru", 82},
	{"hyundai", 78},
	{"kia", 77},
	{"volkswagen", 72},
	{"nissan", 74},
	{"ford", 70},
	{"chevrolet", 68},
	{"gmc", 68},
	{"ram", 66},
	{"jeep", 60},
	{"dodge", 58},
	{"bmw", 65},
	{"mercedes", 64},
	{"audi", 63},
	{"cadillac", 62},
	{"buick", 70},
	{"lincoln", 65},
	{"volvo", 67},
	{"infiniti", 72},
	{"mitsubishi", 72},
}

// ReliabilityScore returns the brand reliability tier for vehicleMake, using the
// same exact-then-containment matching as the MSRP table.
func ReliabilityScore(vehicleMake string) int {
	m := Normalize(vehicleMake)
	if m == "" {
		return DefaultReliability
	}
	for _, t := range reliabilityTiers {
		if t.Make == m {
			return t.Score
		}
	}
	for _, t := range reliabilityTiers {
		if contains(m, t.Make) {
			return t.Score
		}
	}
	return DefaultReliability
}

// ReliabilityTable returns a copy of the tier table.
func ReliabilityTable() map[string]int {
	out := make(map[string]int, len(reliabilityTiers))
	for _, t := range reliabilityTiers {
		out[t.Make] = t.Score
	}
	return out
}
