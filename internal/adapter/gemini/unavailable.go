package gemini

import (
	"context"

	"viralclip-ads/internal/core/domain"
)

// Unavailable is an ad generator that always fails with Err. It stands in
// for Gemini when the client could not be created, so every refresh serves
// the fallback ad.
type Unavailable struct {
	Err error
}

// Generate returns u.Err.
func (u Unavailable) Generate(context.Context) (domain.GeneratedAd, error) {
	return domain.GeneratedAd{}, u.Err
}
