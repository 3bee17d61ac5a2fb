// Package v1 implements the version 1 HTTP API.
package v1

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/almanac/application/service"
	"github.com/helixml/almanac/domain/puzzle"
	"github.com/helixml/almanac/infrastructure/api/middleware"
	"github.com/helixml/almanac/infrastructure/api/v1/dto"
	"github.com/helixml/almanac/infrastructure/input"
)

// maxInputBytes bounds request bodies; real puzzle inputs are a few KiB.
const maxInputBytes = 1 << 20

// SolutionsRouter handles solution endpoints.
type SolutionsRouter struct {
	runner *service.Runner
	logger *slog.Logger
}

// NewSolutionsRouter creates a new SolutionsRouter.
func NewSolutionsRouter(runner *service.Runner, logger *slog.Logger) *SolutionsRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SolutionsRouter{runner: runner, logger: logger}
}

// Routes returns the chi router for solution endpoints.
func (r *SolutionsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/{day}/{part}", r.Solve)

	return router
}

// List handles GET /api/v1/solutions.
func (r *SolutionsRouter) List(w http.ResponseWriter, _ *http.Request) {
	infos := r.runner.Solutions()
	data := make([]dto.SolutionInfo, 0, len(infos))
	for _, info := range infos {
		data = append(data, dto.SolutionInfo{Day: info.Day, Name: info.Name})
	}
	middleware.WriteJSON(w, http.StatusOK, dto.SolutionListResponse{Data: data})
}

// Solve handles POST /api/v1/solutions/{day}/{part}. The body is the raw puzzle input.
func (r *SolutionsRouter) Solve(w http.ResponseWriter, req *http.Request) {
	day, err := puzzle.ParseDay(chi.URLParam(req, "day"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	part, err := puzzle.ParsePart(chi.URLParam(req, "part"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxInputBytes))
	if err != nil {
		middleware.WriteError(w, req, middleware.BadRequest("read body", err), r.logger)
		return
	}
	text := input.Normalize(strings.TrimPrefix(string(body), "\ufeff"))

	result, err := r.runner.RunInput(req.Context(), day, part, text)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.SolveResponse{
		Day:       result.Day,
		Part:      result.Part.Upper(),
		Name:      result.Name,
		Answer:    result.Answer.String(),
		Numeric:   result.Answer.IsNumber(),
		ElapsedNS: result.Elapsed.Nanoseconds(),
		Elapsed:   puzzle.FormatDuration(result.Elapsed),
	})
}
