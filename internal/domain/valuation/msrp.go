package valuation

import (
	"regexp"
	"strings"
)

// MSRPRange is the approximate new-vehicle MSRP span for a model, in
// current dollars.
type MSRPRange struct {
	Base int `json:"base"`
	High int `json:"high"`
}

// Mid returns the rounded midpoint of the range.
func (r MSRPRange) Mid() int {
	return (r.Base + r.High + 1) / 2
}

// MidMSRP returns the rounded midpoint of r.
func MidMSRP(r MSRPRange) int { return r.Mid() }

type modelMSRP struct {
	Model string
	Range MSRPRange
}

type makeMSRP struct {
	Make   string
	Models []modelMSRP
}

// msrpTable is ordered: fuzzy lookups return the first containing key.
var msrpTable = []makeMSRP{
	{"toyota", []modelMSRP{
		{"4runner", MSRPRange{40000, 57000}},
		{"camry", MSRPRange{27000, 38000}},
		{"rav4", MSRPRange{29000, 43000}},
		{"rav4 hybrid", MSRPRange{33000, 45000}},
		{"tacoma", MSRPRange{32000, 56000}},
		{"tundra", MSRPRange{40000, 72000}},
		{"highlander", MSRPRange{38000, 56000}},
		{"corolla", MSRPRange{22000, 30000}},
		{"prius", MSRPRange{29000, 40000}},
		{"sienna", MSRPRange{38000, 55000}},
		{"sequoia", MSRPRange{58000, 80000}},
		{"venza", MSRPRange{33000, 42000}},
		{"land cruiser", MSRPRange{56000, 90000}},
	}},
	{"honda", []modelMSRP{
		{"cr-v", MSRPRange{30000, 43000}},
		{"cr-v hybrid", MSRPRange{34000, 46000}},
		{"pilot", MSRPRange{40000, 56000}},
		{"accord", MSRPRange{28000, 41000}},
		{"civic", MSRPRange{24000, 34000}},
		{"odyssey", MSRPRange{38000, 52000}},
		{"ridgeline", MSRPRange{38000, 52000}},
		{"passport", MSRPRange{37000, 47000}},
		{"hrv", MSRPRange{24000, 31000}},
	}},
	{"kia", []modelMSRP{
		{"telluride", MSRPRange{38000, 56000}},
		{"sorento", MSRPRange{32000, 52000}},
		{"sorento hybrid", MSRPRange{36000, 55000}},
		{"sportage", MSRPRange{27000, 42000}},
		{"sportage hybrid", MSRPRange{30000, 45000}},
		{"soul", MSRPRange{21000, 29000}},
		{"forte", MSRPRange{20000, 28000}},
		{"k5", MSRPRange{26000, 37000}},
		{"stinger", MSRPRange{40000, 56000}},
		{"carnival", MSRPRange{34000, 52000}},
		{"niro", MSRPRange{26000, 38000}},
		{"ev6", MSRPRange{42000, 56000}},
	}},
	{"hyundai", []modelMSRP{
		{"tucson", MSRPRange{28000, 42000}},
		{"tucson hybrid", MSRPRange{31000, 45000}},
		{"santa_fe", MSRPRange{33000, 50000}},
		{"sonata", MSRPRange{26000, 38000}},
		{"elantra", MSRPRange{22000, 32000}},
		{"palisade", MSRPRange{38000, 55000}},
		{"kona", MSRPRange{23000, 34000}},
		{"ioniq5", MSRPRange{42000, 58000}},
	}},
	{"ford", []modelMSRP{
		{"f150", MSRPRange{34000, 80000}},
		{"f-150", MSRPRange{34000, 80000}},
		{"explorer", MSRPRange{38000, 60000}},
		{"escape", MSRPRange{29000, 42000}},
		{"bronco", MSRPRange{36000, 70000}},
		{"bronco sport", MSRPRange{30000, 42000}},
		{"maverick", MSRPRange{23000, 36000}},
		{"edge", MSRPRange{36000, 47000}},
		{"expedition", MSRPRange{55000, 90000}},
		{"ranger", MSRPRange{33000, 48000}},
		{"mustang", MSRPRange{30000, 60000}},
	}},
	{"chevrolet", []modelMSRP{
		{"equinox", MSRPRange{28000, 40000}},
		{"traverse", MSRPRange{36000, 55000}},
		{"silverado", MSRPRange{36000, 75000}},
		{"tahoe", MSRPRange{54000, 80000}},
		{"suburban", MSRPRange{57000, 85000}},
		{"colorado", MSRPRange{30000, 50000}},
		{"trailblazer", MSRPRange{23000, 34000}},
		{"trax", MSRPRange{21000, 29000}},
		{"malibu", MSRPRange{24000, 32000}},
		{"blazer", MSRPRange{35000, 50000}},
	}},
	{"gmc", []modelMSRP{
		{"sierra", MSRPRange{36000, 75000}},
		{"terrain", MSRPRange{30000, 43000}},
		{"acadia", MSRPRange{38000, 55000}},
		{"yukon", MSRPRange{55000, 85000}},
		{"canyon", MSRPRange{30000, 50000}},
	}},
	{"ram", []modelMSRP{
		{"1500", MSRPRange{37000, 78000}},
		{"2500", MSRPRange{44000, 85000}},
		{"ram 1500", MSRPRange{37000, 78000}},
		{"promaster", MSRPRange{35000, 50000}},
	}},
	{"jeep", []modelMSRP{
		{"wrangler", MSRPRange{32000, 62000}},
		{"grand cherokee", MSRPRange{40000, 72000}},
		{"gladiator", MSRPRange{38000, 65000}},
		{"compass", MSRPRange{27000, 38000}},
		{"renegade", MSRPRange{24000, 34000}},
		{"cherokee", MSRPRange{29000, 41000}},
	}},
	{"nissan", []modelMSRP{
		{"rogue", MSRPRange{29000, 42000}},
		{"pathfinder", MSRPRange{36000, 52000}},
		{"murano", MSRPRange{34000, 46000}},
		{"frontier", MSRPRange{30000, 44000}},
		{"titan", MSRPRange{38000, 64000}},
		{"altima", MSRPRange{25000, 35000}},
		{"sentra", MSRPRange{20000, 28000}},
		{"armada", MSRPRange{52000, 70000}},
	}},
	{"subaru", []modelMSRP{
		{"outback", MSRPRange{30000, 43000}},
		{"forester", MSRPRange{29000, 41000}},
		{"crosstrek", MSRPRange{24000, 34000}},
		{"ascent", MSRPRange{36000, 52000}},
		{"legacy", MSRPRange{25000, 36000}},
		{"impreza", MSRPRange{23000, 32000}},
		{"wrx", MSRPRange{32000, 42000}},
	}},
	{"mazda", []modelMSRP{
		{"cx-5", MSRPRange{29000, 40000}},
		{"cx-50", MSRPRange{31000, 44000}},
		{"cx-9", MSRPRange{38000, 50000}},
		{"mazda3", MSRPRange{24000, 35000}},
		{"mazda6", MSRPRange{27000, 37000}},
		{"cx-30", MSRPRange{24000, 35000}},
	}},
	{"volkswagen", []modelMSRP{
		{"tiguan", MSRPRange{30000, 43000}},
		{"atlas", MSRPRange{36000, 55000}},
		{"jetta", MSRPRange{23000, 34000}},
		{"passat", MSRPRange{26000, 36000}},
		{"id.4", MSRPRange{40000, 55000}},
	}},
	{"bmw", []modelMSRP{
		{"3 series", MSRPRange{43000, 62000}},
		{"5 series", MSRPRange{56000, 80000}},
		{"x3", MSRPRange{46000, 63000}},
		{"x5", MSRPRange{64000, 90000}},
		{"x1", MSRPRange{38000, 52000}},
		{"4 series", MSRPRange{46000, 70000}},
	}},
	{"mercedes", []modelMSRP{
		{"c-class", MSRPRange{46000, 66000}},
		{"e-class", MSRPRange{58000, 82000}},
		{"glc", MSRPRange{48000, 68000}},
		{"gle", MSRPRange{60000, 90000}},
		{"gla", MSRPRange{38000, 52000}},
	}},
	{"lexus", []modelMSRP{
		{"rx", MSRPRange{48000, 68000}},
		{"nx", MSRPRange{40000, 58000}},
		{"es", MSRPRange{42000, 58000}},
		{"gx", MSRPRange{58000, 75000}},
		{"is", MSRPRange{40000, 54000}},
		{"lx", MSRPRange{88000, 115000}},
	}},
	{"acura", []modelMSRP{
		{"mdx", MSRPRange{48000, 68000}},
		{"rdx", MSRPRange{40000, 54000}},
		{"tlx", MSRPRange{38000, 55000}},
	}},
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9 ]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases s, replaces everything outside [a-z0-9 ] with a space
// and collapses whitespace.
func Normalize(s string) string {
	s = nonAlnumRe.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// contains reports whether either string contains the other.
func contains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// LookupMSRP resolves a make/model pair against the MSRP table: exact make
// key, else the first make key containing (or contained in) the input; then
// the same two passes for the model within that make.
func LookupMSRP(vehicleMake, model string) (MSRPRange, bool) {
	m := Normalize(vehicleMake)
	mo := Normalize(model)
	if m == "" || mo == "" {
		return MSRPRange{}, false
	}

	for _, entry := range msrpTable {
		if entry.Make == m {
			return findModel(entry.Models, mo)
		}
	}
	for _, entry := range msrpTable {
		if contains(m, entry.Make) {
			return findModel(entry.Models, mo)
		}
	}
	return MSRPRange{}, false
}

func findModel(models []modelMSRP, model string) (MSRPRange, bool) {
	for _, entry := range models {
		if entry.Model == model {
			return entry.Range, true
		}
	}
	for _, entry := range models {
		if contains(model, entry.Model) {
			return entry.Range, true
		}
	}
	return MSRPRange{}, false
}

// MSRPTable returns a copy of the MSRP table keyed by make then model.
func MSRPTable() map[string]map[string]MSRPRange {
	out := make(map[string]map[string]MSRPRange, len(msrpTable))
	for _, entry := range msrpTable {
		models := make(map[string]MSRPRange, len(entry.Models))
		for _, mo := range entry.Models {
			models[mo.Model] = mo.Range
		}
		out[entry.Make] = models
	}
	return out
}
