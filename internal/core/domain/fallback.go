package domain

import "time"

// Fallback ad identity. These values are served whenever generation fails.
const (
	FallbackID             = "default"
	FallbackSponsorName    = "Creator Tools Pro"
	FallbackSponsorTagline = "Everything you need to grow"
	FallbackDescription    = "Check out the latest gear for content creators."
	FallbackCTAText        = "View Offer"
	FallbackAffiliateLink  = "https://www.amazon.com/s?k=content+creator+gear"
	FallbackThemeColor     = "#6366f1"
)

// FallbackAd builds the fixed fallback ad stamped with now.
func FallbackAd(now time.Time) AdContent {
	return AdContent{
		ID:             FallbackID,
		SponsorName:    FallbackSponsorName,
		SponsorTagline: FallbackSponsorTagline,
		Description:    FallbackDescription,
		CTAText:        FallbackCTAText,
		AffiliateLink:  FallbackAffiliateLink,
		ThemeColor:     FallbackThemeColor,
		GeneratedAt:    now.UTC(),
	}
}
