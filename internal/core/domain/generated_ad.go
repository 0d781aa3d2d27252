package domain

import "fmt"

// GeneratedAd is the creative produced by an ad generator. Identity,
// affiliate link and timestamp are attached by the cache, never by the
// generator.
type GeneratedAd struct {
	SponsorName    string `json:"sponsorName" validate:"required"`
	SponsorTagline string `json:"sponsorTagline" validate:"required"`
	Description    string `json:"description" validate:"required"`
	CTAText        string `json:"ctaText" validate:"required"`
	ThemeColor     string `json:"themeColor" validate:"required,hexcolor"`
}

// Validate reports whether the generator payload can be turned into an ad.
func (g GeneratedAd) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAd, err)
	}
	return nil
}
