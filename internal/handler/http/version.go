package http

import (
	"net/http"
)

// getServerVersion answers the build version as plain text. The route is
// public: clients use it as a reachability probe before attempting unlock.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
