package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleCurrentAd returns the ad to display as JSON. The use case never
// fails, so this endpoint always answers 200.
func (h *Handler) handleCurrentAd(w http.ResponseWriter, r *http.Request) {
	ad := h.svc.GetCurrentAd(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(ad); err != nil {
		// encoding should rarely fail; the header is already written
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
