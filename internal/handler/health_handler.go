package handlers

import "net/http"

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{Status: "ok", Database: "ok"}
	statusCode := http.StatusOK

	if err := h.DB.HealthCheck(); err != nil {
		response.Status = "degraded"
		response.Database = err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	WriteSuccess(w, response, statusCode)
}
