package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"govmaf/adapters/runner"
	"govmaf/domain/core"
	"govmaf/domain/score"
	"govmaf/domain/stat"
	"govmaf/internal/analysis"
	"govmaf/internal/cpu"
	"govmaf/internal/report"
	"govmaf/internal/testkit"
	"govmaf/models"
	"govmaf/ports"
	"govmaf/vmaf"
)

// scoreRequest configures one scoring invocation. Zero values fall back to
// the service's configured defaults.
type scoreRequest struct {
	NumFrames          int    `json:"num_frames"`
	Width              int    `json:"width"`
	Height             int    `json:"height"`
	ModelPath          string `json:"model_path"`
	EnableConfInterval bool   `json:"enable_conf_interval"`
	AggregateMethod    string `json:"aggregate_method"`
	DisableAVX         bool   `json:"disable_avx"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.NumFrames <= 0 {
		req.NumFrames = 30
	}
	if req.Width <= 0 {
		req.Width = 64
	}
	if req.Height <= 0 {
		req.Height = 36
	}
	if req.ModelPath == "" {
		req.ModelPath = s.scoring.ModelPath
	}
	if req.AggregateMethod == "" {
		req.AggregateMethod = s.scoring.AggregateMethod
	}

	settings := &vmaf.Settings{
		Model: vmaf.ModelSettings{
			Path:               req.ModelPath,
			EnableConfInterval: req.EnableConfInterval,
		},
		DisableAVX:         req.DisableAVX,
		Width:              req.Width,
		Height:             req.Height,
		AggregateMethod:    score.ParseAggregateMethod(req.AggregateMethod),
		BootstrapResamples: s.scoring.BootstrapResamples,
		BootstrapSeed:      s.scoring.BootstrapSeed,
		NewExtractor: func(model core.ModelRef, capability cpu.Capability) (ports.FeatureExtractor, error) {
			return &testkit.FakeExtractor{Model: model}, nil
		},
		Logger: s.logger,
	}

	capability := cpu.Autodetect(settings.DisableAVX)
	src := testkit.NewSyntheticSource(req.NumFrames, req.Width, req.Height)

	res, err := vmaf.Score(r.Context(), src, capability, settings)
	if err != nil {
		respondScoringError(w, err)
		return
	}

	run, err := models.NewRunFromResult(res, core.ModelRef(req.ModelPath), score.MetricVmaf)
	if err != nil {
		respondScoringError(w, err)
		return
	}

	if req.EnableConfInterval {
		ci, err := runner.PercentileInterval(res, s.scoring.CILevel)
		if err != nil {
			respondScoringError(w, err)
			return
		}
		run.CILow = &ci.Low
		run.CIHigh = &ci.High
	}

	if err := s.repo.Save(r.Context(), run); err != nil {
		s.logger.Error("failed to persist run %s: %v", run.ID, err)
		respondError(w, http.StatusInternalServerError, "failed to persist run")
		return
	}

	respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.repo.List(r.Context(), 50)
	if err != nil {
		s.logger.Error("failed to list runs: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	respondJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	res := resultFromRun(run)
	summaries := analysis.SummarizeAll(res)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.HTML(run, summaries))
}

func (s *Server) handleRunExport(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "run_"+run.ID+".xlsx"))
	if err := s.exporter.Write(w, run); err != nil {
		s.logger.Error("failed to export run %s: %v", run.ID, err)
	}
}

func (s *Server) lookupRun(w http.ResponseWriter, r *http.Request) (*models.Run, bool) {
	id := chi.URLParam(r, "id")
	run, err := s.repo.GetByID(r.Context(), core.RunID(id))
	if errors.Is(err, core.ErrKeyNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("run %s not found", id))
		return nil, false
	}
	if err != nil {
		s.logger.Error("failed to load run %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to load run")
		return nil, false
	}
	return run, true
}

// resultFromRun rebuilds a result from the persisted frame scores so
// summaries and reports can reuse the in-memory analysis path.
func resultFromRun(run *models.Run) *score.Result {
	res := score.NewResult()
	res.SetAggregateMethod(score.ParseAggregateMethod(run.AggregateMethod))
	res.SetScores(score.MetricVmaf, stat.NewVectorFrom(run.FrameScores))
	res.SetNumFrames(run.NumFrames)
	return res
}

func respondScoringError(w http.ResponseWriter, err error) {
	if core.IsLogicError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
