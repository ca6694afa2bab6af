// Package extractor pulls best-effort vehicle data out of a listing page.
// Everything it returns is a hint for the user to confirm.
package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dealscout/dealscout/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 400

	minListingPrice = 1000
	maxListingPrice = 500000
)

var (
	priceRe         = regexp.MustCompile(`\$\s*([\d,]{4,8})(?:\.\d{2})?`)
	monthlySuffixRe = regexp.MustCompile(`^\s*/\s*mo`)
	milesRe         = regexp.MustCompile(`(?i)([\d,]{4,7})\s*(?:miles?|mi\.?)\b`)
	mileageLabelRe  = regexp.MustCompile(`(?i)mileage[^0-9]{0,20}([\d,]{4,7})`)
	yearRe          = regexp.MustCompile(`\b(19[89]\d|20[012]\d)\b`)
	vinRe           = regexp.MustCompile(`\b([A-HJ-NPR-Z0-9]{17})\b`)
	accidentRe      = regexp.MustCompile(`(?i)accident\s+reported|reported\s+accident`)
	noAccidentRe    = regexp.MustCompile(`(?i)no\s+accidents?\s+reported|clean\s+carfax|0\s+accident`)
	oneOwnerRe      = regexp.MustCompile(`(?i)\b1[-\s]?owner\b|one[-\s]?owner`)
	fewOwnersRe     = regexp.MustCompile(`(?i)\b([23])\s*(?:previous\s+)?owners?\b`)
	makeRe          = regexp.MustCompile(`(?i)\b(` + strings.Join(knownMakes, "|") + `)\b`)
)

// knownMakes is matched leftmost-first, so "Mercedes" wins over
// "Mercedes-Benz" and both canonicalize the same way.
var knownMakes = []string{
	"Toyota", "Honda", "Kia", "Ford", "Chevrolet", "Chevy", "GMC", "Dodge",
	"Ram", "Jeep", "Nissan", "Hyundai", "Subaru", "Mazda", "Volkswagen", "VW",
	"BMW", "Mercedes", "Mercedes-Benz", "Lexus", "Acura", "Infiniti", "Cadillac",
	"Buick", "Lincoln", "Volvo", "Audi", "Porsche", "Land Rover", "Jaguar",
	"Mitsubishi", "Chrysler", "Genesis",
}

var makeAliases = map[string]string{
	"chevy": "Chevrolet",
	"vw":    "Volkswagen",
}

// Messages shown with an extraction result.
const (
	MessageExtracted = "Listing data extracted — please verify below."
	MessageLimited   = "Limited data found. Please complete the form manually."
)

// Analyze extracts listing data from a page and reports whether anything
// useful (price, year or make) was found.
func Analyze(page string) *domain.ExtractionResult {
	data := Extract(page)
	useful := data.Price != nil || data.Year != nil || data.Make != ""

	res := &domain.ExtractionResult{
		Success: useful,
		Partial: !useful,
		Message: MessageLimited,
		Data:    data,
	}
	if useful {
		res.Message = MessageExtracted
	}
	return res
}

// Extract runs the field heuristics over raw listing HTML. Fields that cannot
// be found are left empty.
func Extract(page string) domain.VehicleListing {
	v := domain.VehicleListing{Source: "extracted"}

	head := scanHead(page)
	v.Title = truncate(firstNonEmpty(head.ogTitle, head.title), maxTitleLen)
	v.Description = truncate(head.ogDescription, maxDescriptionLen)

	v.Price = extractPrice(page)
	v.Mileage = extractMileage(page)
	v.Year = extractYear(v.Title, page)

	if m := vinRe.FindStringSubmatch(page); m != nil {
		v.VIN = m[1]
	}
	if m := makeRe.FindStringSubmatch(v.Title + " " + v.Description); m != nil {
		v.Make = canonicalMake(m[1])
	}

	switch {
	case accidentRe.MatchString(page):
		v.AccidentHint = domain.BoolPtr(true)
	case noAccidentRe.MatchString(page):
		v.AccidentHint = domain.BoolPtr(false)
	}

	if oneOwnerRe.MatchString(page) {
		v.OwnerHint = domain.IntPtr(1)
	}
	if m := fewOwnersRe.FindStringSubmatch(page); m != nil {
		n, _ := strconv.Atoi(m[1])
		v.OwnerHint = domain.IntPtr(n)
	}

	return v
}

// extractPrice takes the upper median of the plausible dollar amounts on the
// page, ignoring monthly payment figures such as "$389/mo".
func extractPrice(page string) *int {
	var prices []int
	for _, loc := range priceRe.FindAllStringSubmatchIndex(page, -1) {
		if monthlySuffixRe.MatchString(page[loc[1]:]) {
			continue
		}
		p, ok := parseNumber(page[loc[2]:loc[3]])
		if ok && p >= minListingPrice && p <= maxListingPrice {
			prices = append(prices, p)
		}
	}
	if len(prices) == 0 {
		return nil
	}
	sort.Ints(prices)
	return domain.IntPtr(prices[len(prices)/2])
}

// extractMileage only considers the first mileage-looking match.
func extractMileage(page string) *int {
	m := milesRe.FindStringSubmatch(page)
	if m == nil {
		m = mileageLabelRe.FindStringSubmatch(page)
	}
	if m == nil {
		return nil
	}
	miles, ok := parseNumber(m[1])
	if !ok || miles <= 100 || miles >= 500000 {
		return nil
	}
	return domain.IntPtr(miles)
}

func extractYear(title, page string) *int {
	m := yearRe.FindStringSubmatch(title)
	if m == nil {
		m = yearRe.FindStringSubmatch(page)
	}
	if m == nil {
		return nil
	}
	y, _ := strconv.Atoi(m[1])
	return domain.IntPtr(y)
}

func canonicalMake(raw string) string {
	lower := strings.ToLower(raw)
	if alias, ok := makeAliases[lower]; ok {
		return alias
	}
	for _, m := range knownMakes {
		if strings.EqualFold(m, raw) {
			return m
		}
	}
	return raw
}

func parseNumber(s string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	return n, err == nil
}

type headInfo struct {
	title         string
	ogTitle       string
	ogDescription string
}

// scanHead tokenizes the page for <title> and the Open Graph meta tags.
func scanHead(page string) headInfo {
	var info headInfo
	z := html.NewTokenizer(strings.NewReader(page))
	inTitle := false

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return info
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Title:
				inTitle = tt == html.StartTagToken
			case atom.Meta:
				prop, content := metaAttrs(tok)
				switch {
				case prop == "og:title" && info.ogTitle == "":
					info.ogTitle = strings.TrimSpace(content)
				case prop == "og:description" && info.ogDescription == "":
					info.ogDescription = strings.TrimSpace(content)
				}
			}
		case html.TextToken:
			if inTitle && info.title == "" {
				info.title = strings.TrimSpace(string(z.Text()))
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}

func metaAttrs(tok html.Token) (prop, content string) {
	for _, a := range tok.Attr {
		switch strings.ToLower(a.Key) {
		case "property":
			prop = strings.ToLower(a.Val)
		case "content":
			content = a.Val
		}
	}
	return prop, content
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
