package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/almanac/application/service"
	"github.com/helixml/almanac/infrastructure/api/middleware"
	"github.com/helixml/almanac/infrastructure/api/v1/dto"
)

// AlmanacRouter handles queries over structured almanac documents.
type AlmanacRouter struct {
	almanac *service.Almanac
	logger  *slog.Logger
}

// NewAlmanacRouter creates a new AlmanacRouter.
func NewAlmanacRouter(almanac *service.Almanac, logger *slog.Logger) *AlmanacRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &AlmanacRouter{almanac: almanac, logger: logger}
}

// Routes returns the chi router for almanac endpoints.
func (r *AlmanacRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/minimum", r.Minimum)

	return router
}

// Minimum handles POST /api/v1/almanac/minimum.
func (r *AlmanacRouter) Minimum(w http.ResponseWriter, req *http.Request) {
	var body dto.MinimumRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxInputBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.BadRequest("decode request", err), r.logger)
		return
	}

	mode, err := service.ParseSeedMode(body.Mode)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	result, err := r.almanac.Minimum(req.Context(), body.Document.ToDomain(), mode)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	intervals := make([]dto.Interval, 0, len(result.Intervals))
	for _, iv := range result.Intervals {
		intervals = append(intervals, dto.Interval{Start: iv.Start(), Length: iv.Length()})
	}
	middleware.WriteJSON(w, http.StatusOK, dto.MinimumResponse{
		Minimum:   result.Value,
		Mode:      string(mode),
		Intervals: intervals,
		ElapsedNS: result.Elapsed.Nanoseconds(),
	})
}
