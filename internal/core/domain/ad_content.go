package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// AdStorageKey is the single well-known key the daily ad is stored under.
	AdStorageKey = "daily_ad_campaign"

	// AdTTL is how long a stored ad is served before it is regenerated.
	AdTTL = 24 * time.Hour
)

// ErrInvalidAd is returned by Validate when an ad is missing a field or a
// field is malformed.
var ErrInvalidAd = errors.New("invalid ad content")

var validate = validator.New(validator.WithRequiredStructEnabled())

// AdContent is a sponsored advertisement shown to creators. It is immutable
// once created and replaced wholesale whenever the cache refreshes.
type AdContent struct {
	ID             string    `json:"id" validate:"required"`
	SponsorName    string    `json:"sponsorName" validate:"required"`
	SponsorTagline string    `json:"sponsorTagline" validate:"required"`
	Description    string    `json:"description" validate:"required"`
	CTAText        string    `json:"ctaText" validate:"required"`
	AffiliateLink  string    `json:"affiliateLink" validate:"required,url"`
	ThemeColor     string    `json:"themeColor" validate:"required,hexcolor"`
	GeneratedAt    time.Time `json:"generatedAt" validate:"required"`
}

// Validate reports whether every field of the ad is populated and well formed.
func (a AdContent) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAd, err)
	}
	return nil
}

// Age returns the absolute distance between now and the generation time.
// Timestamps in the future count as young as their distance from now.
func (a AdContent) Age(now time.Time) time.Duration {
	age := now.Sub(a.GeneratedAt)
	if age < 0 {
		age = -age
	}
	return age
}

// Fresh reports whether the ad is still inside its validity window.
func (a AdContent) Fresh(now time.Time) bool {
	return a.Age(now) < AdTTL
}
