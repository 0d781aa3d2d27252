package port

import (
	"context"

	"viralclip-ads/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad cache. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// GetCurrentAd returns the ad that should be displayed right now. It
	// serves the stored ad while it is younger than domain.AdTTL and
	// regenerates it otherwise. It never fails: when generation fails a
	// fully populated fallback ad is returned.
	GetCurrentAd(ctx context.Context) domain.AdContent
}
