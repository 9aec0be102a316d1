package adaptor

import (
	"net/http"
	"time"

	"lotr-api/pkg/database"
	"lotr-api/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHealthHandler(db database.PgxIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

type healthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health handles GET /health. 503 when the store is unreachable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	code := http.StatusOK
	status := "healthy"

	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("Database health check failed", zap.Error(err))
		dbStatus = "disconnected"
		code = http.StatusServiceUnavailable
		status = "unhealthy"
	}

	utils.ResponseJSON(w, code, healthStatus{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  map[string]string{"database": dbStatus},
	})
}
