package endpoints

import (
	"net/http"

	"github.com/quevon24/webbase/pkg/server"
)

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterHealthEndpoint registers the /health endpoint
func RegisterHealthEndpoint(s *server.Server) {
	healthStore := s.Health

	s.Router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "error",
				Database: "unreachable",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Database: "ok",
		})
	}).Methods("GET")
}
