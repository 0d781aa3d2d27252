package affiliate

import (
	"cmp"
	"slices"
	"strings"

	"viralclip-ads/internal/core/domain"
)

type rule struct {
	match string
	link  string
}

// Resolver implements port.AffiliateResolver. Each rule maps a sponsor name
// fragment (matched case-insensitively) to a tracking link; sponsors that
// match no rule get the default link.
type Resolver struct {
	rules       []rule
	defaultLink string
}

// NewResolver builds a resolver from a fragment→link map. Longer fragments
// win over shorter ones so "DJI Mic" can override "DJI". An empty default
// falls back to domain.FallbackAffiliateLink.
func NewResolver(links map[string]string, defaultLink string) *Resolver {
	if defaultLink == "" {
		defaultLink = domain.FallbackAffiliateLink
	}
	rules := make([]rule, 0, len(links))
	for match, link := range links {
		match = strings.ToLower(strings.TrimSpace(match))
		if match == "" || link == "" {
			continue
		}
		rules = append(rules, rule{match: match, link: link})
	}
	slices.SortFunc(rules, func(a, b rule) int {
		if c := cmp.Compare(len(b.match), len(a.match)); c != 0 {
			return c
		}
		return cmp.Compare(a.match, b.match)
	})
	return &Resolver{rules: rules, defaultLink: defaultLink}
}

// Resolve returns the tracking link for the sponsor.
func (r *Resolver) Resolve(sponsorName string) string {
	name := strings.ToLower(sponsorName)
	for _, rl := range r.rules {
		if strings.Contains(name, rl.match) {
			return rl.link
		}
	}
	return r.defaultLink
}
