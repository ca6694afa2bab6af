package scoring_test

import (
	"strings"
	"testing"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestBuildTalkTrack_SubjectPerVerdict(t *testing.T) {
	v := camry(20000)
	est := domain.IntPtr(21000)

	tests := []struct {
		verdict domain.Verdict
		subject string
	}{
		{domain.VerdictBuy, "Subject: Ready to Move Forward on 2020 Toyota Camry"},
		{domain.VerdictConsider, "Subject: Pricing Question on 2020 Toyota Camry"},
		{domain.VerdictPass, "Subject: Pass on 2020 Toyota Camry — Price Concerns"},
	}
	for _, tt := range tests {
		t.Run(string(tt.verdict), func(t *testing.T) {
			track := scoring.BuildTalkTrack(v, tt.verdict, est, nil)
			assert.True(t, strings.HasPrefix(track.Email, tt.subject+"\n\nHi,\n\n"))
			assert.True(t, strings.HasSuffix(track.Email, "\n\nThank you"))
			assert.True(t, strings.HasPrefix(track.Short, `"`))
			assert.Contains(t, track.Short, "$21,000")
		})
	}
}

func TestBuildTalkTrack_CompNote(t *testing.T) {
	stats := &domain.CompStats{Count: 7, Median: 15250}

	track := scoring.BuildTalkTrack(camry(15000), domain.VerdictConsider, domain.IntPtr(15500), stats)

	assert.Contains(t, track.Short, "closer to $15,500 (based on 7 comparable listings, median $15,250).")
	assert.Contains(t, track.Email, "Based on 7 comparable listings, I'm seeing")
}

func TestBuildTalkTrack_PartialName(t *testing.T) {
	v := domain.VehicleListing{Make: "Honda"}

	track := scoring.BuildTalkTrack(v, domain.VerdictPass, nil, nil)

	assert.Equal(t, `"Honda at the asking price is above what I'm finding in the market — around market value. Without a meaningful adjustment, I'll need to pass."`, track.Short)
}
