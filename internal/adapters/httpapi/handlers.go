package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/viz"
)

// tickCount is how many axis ticks the charts ask for.
const tickCount = 6

type chartResponse struct {
	Points         []viz.Point `json:"points"`
	XDomain        [2]float64  `json:"x_domain"`
	YDomain        [2]float64  `json:"y_domain"`
	XTickValues    []float64   `json:"x_tick_values"`
	YTickValues    []float64   `json:"y_tick_values"`
	XTickFormatter string      `json:"x_tick_formatter"`
	YTickFormatter string      `json:"y_tick_formatter"`
}

// metricFn selects one timing metric from a stat row, nil when the
// row carries no value for it.
type metricFn func(domain.TaskStat) *float64

func executionTime(row domain.TaskStat) *float64 {
	return row.ExecutionTime
}

func responseTime(row domain.TaskStat) *float64 {
	return row.ResponseTime
}

func retrievalTime(row domain.TaskStat) *float64 {
	return row.WaitingRetrievalTime
}

// points collects one [taskID, value] pair per stat row carrying the
// selected metric.
func (s *Server) points(metric metricFn) []viz.Point {
	var out []viz.Point
	for _, row := range s.rt.TaskStats() {
		if v := metric(row); v != nil {
			out = append(out, viz.Point{float64(row.TaskID), *v})
		}
	}
	return out
}

func (s *Server) handleEnsureTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	switched, err := s.rt.EnsureTemplate(r.Context(), name)
	if err != nil {
		s.log.Error(err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !switched {
		writeError(w, http.StatusConflict, "another template switch is in flight")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"template": name})
}

func (s *Server) handleExecutionTime(w http.ResponseWriter, r *http.Request) {
	s.handleChart(w, executionTime, "no completed tasks available")
}

func (s *Server) handleResponseTime(w http.ResponseWriter, r *http.Request) {
	s.handleChart(w, responseTime, "no task response time data available")
}

func (s *Server) handleRetrievalTime(w http.ResponseWriter, r *http.Request) {
	s.handleChart(w, retrievalTime, "no task retrieval time data available")
}

func (s *Server) handleChart(w http.ResponseWriter, metric metricFn, emptyMsg string) {
	if s.rt.Snapshot() == nil {
		writeError(w, http.StatusNotFound, domain.ErrNoDataBound.Error())
		return
	}

	points := s.points(metric)
	if len(points) == 0 {
		writeError(w, http.StatusNotFound, emptyMsg)
		return
	}

	xDomain, yDomain := viz.ComputePointsDomain(points)
	writeJSON(w, http.StatusOK, chartResponse{
		Points:         viz.DownsamplePoints(points, s.sampling.Points),
		XDomain:        xDomain,
		YDomain:        yDomain,
		XTickValues:    viz.ComputeLinearTickValues(xDomain, tickCount),
		YTickValues:    viz.ComputeLinearTickValues(yDomain, tickCount),
		XTickFormatter: viz.D3IntFormat,
		YTickFormatter: viz.D3TimeFormat,
	})
}

func (s *Server) handleExecutionTimeCSV(w http.ResponseWriter, r *http.Request) {
	s.handleChartCSV(w, executionTime,
		"task_execution_time.csv", "Execution Time", "no completed tasks available")
}

func (s *Server) handleResponseTimeCSV(w http.ResponseWriter, r *http.Request) {
	s.handleChartCSV(w, responseTime,
		"task_response_time.csv", "Response Time", "no task response time data available")
}

func (s *Server) handleRetrievalTimeCSV(w http.ResponseWriter, r *http.Request) {
	s.handleChartCSV(w, retrievalTime,
		"task_retrieval_time.csv", "Retrieval Time", "no task retrieval time data available")
}

func (s *Server) handleChartCSV(w http.ResponseWriter, metric metricFn, filename, yHeader, emptyMsg string) {
	if s.rt.Snapshot() == nil {
		writeError(w, http.StatusNotFound, domain.ErrNoDataBound.Error())
		return
	}

	points := s.points(metric)
	if len(points) == 0 {
		writeError(w, http.StatusNotFound, emptyMsg)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Type", "text/csv")
	if err := viz.WritePointsCSV(w, [2]string{"Task ID", yHeader}, points); err != nil {
		s.log.Error(err)
	}
}
