package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleAdClick redirects the viewer to the affiliate link of the current
// ad. The optional `id` query parameter names the ad the viewer saw; when
// the ad has been regenerated since, the click answers HTTP 410 instead of
// sending the viewer to a different sponsor. Without `id` the current ad's
// link is used.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	ad := h.svc.GetCurrentAd(r.Context())

	if id := r.URL.Query().Get("id"); id != "" && id != ad.ID {
		h.logger.Info("ad click for expired ad", slog.String("ad_id", id), slog.String("current_ad_id", ad.ID))
		http.Error(w, "ad expired", http.StatusGone)
		return
	}

	h.logger.Info("ad click", slog.String("ad_id", ad.ID), slog.String("sponsor", ad.SponsorName))
	http.Redirect(w, r, ad.AffiliateLink, http.StatusFound)
}
