package port

import (
	"context"

	"viralclip-ads/internal/core/domain"
)

// AdGenerator produces a fresh ad creative, typically by asking a
// generative AI model. Calls may block on the network and may fail.
type AdGenerator interface {
	Generate(ctx context.Context) (domain.GeneratedAd, error)
}

// AffiliateResolver maps a sponsor to the tracking link used for its ad.
type AffiliateResolver interface {
	Resolve(sponsorName string) string
}
