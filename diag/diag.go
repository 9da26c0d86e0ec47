package diag

import (
	"context"
	"net/http"
	"os"
	"time"

	"trippy/rdx"
	"trippy/trips"
	"trippy/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler reports backend and store health. Probes are best-effort:
// failures are rendered as status strings and the endpoint always
// answers 200.
type Handler struct {
	Store trips.TripStore
}

func NewHandler(store trips.TripStore) *Handler {
	return &Handler{Store: store}
}

// GET /test
func (h *Handler) TestBackend(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	response := utils.M{
		"backend":           "✅ Running",
		"database":          "⚠️ Available but not initialized",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Store != nil {
		response["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		names, err := h.Store.Collections(ctx)
		if err != nil {
			response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			response["database"] = "✅ Connected & Working"
			if len(names) > 10 {
				names = names[:10]
			}
			if names == nil {
				names = []string{}
			}
			response["collections"] = names
		}
	}

	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")
	response["redis"] = redisStatus(r.Context())

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) == "" {
		return "❌ Not Set"
	}
	return "✅ Set"
}

func redisStatus(ctx context.Context) string {
	if rdx.Conn == nil {
		return "❌ Not Configured"
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdx.Conn.Ping(ctx).Err(); err != nil {
		return "⚠️ Configured but Error: " + truncate(err.Error(), 50)
	}
	return "✅ Connected"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
