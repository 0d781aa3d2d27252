package configs

// Affiliate configures the tracking links attached to generated ads.
// Links maps a sponsor name fragment to a URL, e.g.
// AFFILIATE_LINKS="DJI=https://aff.example.com/dji,Rode=https://aff.example.com/rode".
type Affiliate struct {
	DefaultLink string            `env:"DEFAULT_LINK"`
	Links       map[string]string `env:"LINKS" envSeparator:"," envKeyValSeparator:"="`
}
