package scoring

import (
	"fmt"
	"strconv"

	"github.com/dealscout/dealscout/internal/domain"
)

// TalkTrack is the negotiation narrative for a verdict.
type TalkTrack struct {
	Short string
	Email string
}

type narrativeParts struct {
	name     string
	price    string
	estimate string
	compNote string
	count    int
	hasComps bool
}

func newNarrativeParts(v domain.VehicleListing, estimate *int, stats *domain.CompStats) narrativeParts {
	p := narrativeParts{
		name:     v.DisplayName(),
		price:    "the asking price",
		estimate: "market value",
	}
	if v.HasPrice() {
		p.price = dollars(*v.Price)
	}
	if estimate != nil && *estimate != 0 {
		p.estimate = dollars(*estimate)
	}
	if stats != nil {
		p.hasComps = true
		p.count = stats.Count
		p.compNote = fmt.Sprintf(" (based on %d comparable listings, median %s)", stats.Count, dollars(stats.Median))
	}
	return p
}

// evidenceOr describes the comparable set as "<count> <noun>", or falls back.
func (p narrativeParts) evidenceOr(noun, fallback string) string {
	if !p.hasComps {
		return fallback
	}
	return strconv.Itoa(p.count) + " " + noun
}

// BuildTalkTrack fills the verdict's short line and email templates.
func BuildTalkTrack(v domain.VehicleListing, verdict domain.Verdict, estimate *int, stats *domain.CompStats) TalkTrack {
	p := newNarrativeParts(v, estimate, stats)

	switch verdict {
	case domain.VerdictBuy:
		return TalkTrack{
			Short: fmt.Sprintf(`"I've pulled %s and %s at %s is a solid buy — comparable listings are running around %s%s. I'd like to move forward before it goes."`,
				p.evidenceOr("comps", "market data"), p.name, p.price, p.estimate, p.compNote),
			Email: fmt.Sprintf(`Subject: Ready to Move Forward on %s

Hi,

I researched comparable listings%s and %s at %s is competitively priced — market value comes in around %s.

I'm ready to proceed and would like to schedule time this week. Please let me know your availability.

Thank you`, p.name, p.compNote, p.name, p.price, p.estimate),
		}

	case domain.VerdictConsider:
		return TalkTrack{
			Short: fmt.Sprintf(`"%s is listed at %s. My comp research puts adjusted market value closer to %s%s. Can we discuss the price or add value to make this work?"`,
				p.name, p.price, p.estimate, p.compNote),
			Email: fmt.Sprintf(`Subject: Pricing Question on %s

Hi,

I'm very interested in %s listed at %s. Based on %s, I'm seeing adjusted market value closer to %s%s.

Could we discuss price flexibility, or include value such as a service contract, accessories, or a pre-purchase inspection?

Thank you`, p.name, p.name, p.price, p.evidenceOr("comparable listings", "market research"), p.estimate, p.compNote),
		}

	default:
		return TalkTrack{
			Short: fmt.Sprintf(`"%s at %s is above what I'm finding in the market%s — around %s. Without a meaningful adjustment, I'll need to pass."`,
				p.name, p.price, p.compNote, p.estimate),
			Email: fmt.Sprintf(`Subject: Pass on %s — Price Concerns

Hi,

Thank you for the listing on %s at %s. After reviewing %s, I'm finding adjusted market value around %s%s.

At the current price the value isn't aligned with my budget. Please reach out if the price changes.

Thank you`, p.name, p.name, p.price, p.evidenceOr("comparable listings", "market data"), p.estimate, p.compNote),
		}
	}
}
