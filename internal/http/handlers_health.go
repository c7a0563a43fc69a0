package httpx

import "net/http"

// HealthHandler reports process liveness for load balancers.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
