package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Munhboldn/happyboard/internal/happiness"
	"github.com/Munhboldn/happyboard/internal/logging"
)

// exportFilename is the attachment name for CSV downloads.
const exportFilename = "filtered_happiness_data.csv"

// handleIndex serves the dashboard page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleHealth reports liveness and basic dataset stats.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": s.data.Len(),
	})
}

// metaResponse describes the dataset for populating frontend controls.
type metaResponse struct {
	Countries []string     `json:"countries"`
	YearMin   int          `json:"yearMin"`
	YearMax   int          `json:"yearMax"`
	Metrics   []metricInfo `json:"metrics"`
	Records   int          `json:"records"`
}

type metricInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// handleMeta returns available countries, year range, and registered metrics.
func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	if s.serveCached(w, r) {
		return
	}

	minYear, maxYear := s.data.YearRange()
	metrics := make([]metricInfo, 0, happiness.MetricCount())
	for _, def := range happiness.Metrics() {
		metrics = append(metrics, metricInfo{Key: string(def.Key), Label: def.Label})
	}

	writeJSON(w, r, http.StatusOK, metaResponse{
		Countries: s.data.Countries(),
		YearMin:   minYear,
		YearMax:   maxYear,
		Metrics:   metrics,
		Records:   s.data.Len(),
	})
}

// summaryResponse carries per-metric statistics for the filtered selection.
type summaryResponse struct {
	Count     int                 `json:"count"`
	Summaries []happiness.Summary `json:"summaries"`
}

// handleSummary returns mean/min/max statistics over the filtered view.
// With ?metric= it summarizes that single metric, otherwise all of them.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	view, err := s.parseCriteria(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	var keys []happiness.Metric
	if m := r.URL.Query().Get("metric"); m != "" {
		keys = []happiness.Metric{happiness.Metric(m)}
	} else {
		for _, def := range happiness.Metrics() {
			keys = append(keys, def.Key)
		}
	}

	summaries := make([]happiness.Summary, 0, len(keys))
	for _, key := range keys {
		summary, err := happiness.Summarize(view, key)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, happiness.ErrUnknownMetric) {
				status = http.StatusBadRequest
			}
			respondError(w, r, status, err)
			return
		}
		summaries = append(summaries, summary)
	}

	writeJSON(w, r, http.StatusOK, summaryResponse{
		Count:     view.Len(),
		Summaries: summaries,
	})
}

// handleTrends returns a line chart of a metric over time for the selection.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	view, err := s.parseCriteria(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	metric := happiness.Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = happiness.MetricLifeLadder
	}

	chart, err := happiness.TrendChart(view, metric)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, happiness.ErrUnknownMetric) {
			status = http.StatusBadRequest
		}
		respondError(w, r, status, err)
		return
	}

	writeJSON(w, r, http.StatusOK, chart)
}

// handleCompare returns a grouped bar chart across all metrics for the selection.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	view, err := s.parseCriteria(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, r, http.StatusOK, happiness.ComparisonChart(view))
}

// handleMap returns choropleth data of happiness scores for one year,
// restricted to an optional score range.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	_, maxYear := s.data.YearRange()

	year, err := parseIntParam(r, "year", maxYear)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	scoreMin, err := parseFloatParam(r, "min", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}
	scoreMax, err := parseFloatParam(r, "max", 10)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, r, http.StatusOK, s.data.MapChart(year, scoreMin, scoreMax))
}

// handleInsights returns the single-country breakdown: average score, best
// and worst years, and supporting metric averages.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		respondErrorMessage(w, r, http.StatusBadRequest, "country parameter is required")
		return
	}

	insights, ok := s.data.Insights(country)
	if !ok {
		respondError(w, r, http.StatusNotFound,
			fmt.Errorf("unknown country %q", country))
		return
	}

	writeJSON(w, r, http.StatusOK, insights)
}

// handleTable returns the filtered records as a render-ready table.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	view, err := s.parseCriteria(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, r, http.StatusOK, happiness.BuildTable(view))
}

// handleExport streams the filtered records as a CSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	view, err := s.parseCriteria(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFilename))

	if err := happiness.WriteCSV(w, view); err != nil {
		// Headers are already sent; all we can do is log the failure.
		logging.FromContext(r.Context()).Error("csv export failed", "error", err)
	}
}

// handleQuote returns sidebar flavor text.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"quote": happiness.RandomQuote(),
		"fact":  happiness.RandomFact(),
	})
}

// parseCriteria builds filter criteria from query parameters and applies them.
//
//	countries  comma-separated country names; empty means all countries
//	from, to   inclusive year bounds; default to the dataset's full range
func (s *Server) parseCriteria(r *http.Request) (happiness.View, error) {
	minYear, maxYear := s.data.YearRange()

	from, err := parseIntParam(r, "from", minYear)
	if err != nil {
		return happiness.View{}, err
	}
	to, err := parseIntParam(r, "to", maxYear)
	if err != nil {
		return happiness.View{}, err
	}

	var countries []string
	if raw := r.URL.Query().Get("countries"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				countries = append(countries, c)
			}
		}
	} else {
		countries = s.data.Countries()
	}

	return s.data.Filter(happiness.Criteria{
		Countries: countries,
		YearMin:   from,
		YearMax:   to,
	}), nil
}

// parseIntParam reads an integer query parameter with a default.
func parseIntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter %q: must be an integer", name, raw)
	}
	return v, nil
}

// parseFloatParam reads a float query parameter with a default.
func parseFloatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter %q: must be a number", name, raw)
	}
	return v, nil
}

// serveCached handles ETag revalidation for responses that only change when
// the dataset changes. The dataset's load ID is stable for the process
// lifetime, so a matching ETag means the client copy is current.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request) bool {
	etag := `"` + s.data.ID() + `"`
	w.Header().Set("ETag", etag)

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}
