package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/runviz/internal/adapters/config"
	"go.trai.ch/runviz/internal/adapters/httpapi"
	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/viz"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type fakeRuntime struct {
	stats     []domain.TaskStat
	snapshot  *domain.Dataset
	reloads   int
	reloadErr error

	ensureOK  bool
	ensureErr error
}

func (f *fakeRuntime) ReloadIfNeeded(context.Context) (bool, error) {
	f.reloads++
	return false, f.reloadErr
}

func (f *fakeRuntime) EnsureTemplate(context.Context, string) (bool, error) {
	return f.ensureOK, f.ensureErr
}

func (f *fakeRuntime) Snapshot() *domain.Dataset {
	if f.snapshot == nil && f.stats != nil {
		return &domain.Dataset{Stats: f.stats}
	}
	return f.snapshot
}

func (f *fakeRuntime) TaskStats() []domain.TaskStat { return f.stats }

func seconds(v float64) *float64 { return &v }

func newTestServer(rt httpapi.Runtime) *httptest.Server {
	srv := httpapi.NewServer(rt, nopLogger{}, config.Default().Sampling)
	return httptest.NewServer(srv.Handler())
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&fakeRuntime{})
	defer ts.Close()

	resp := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExecutionTimeChart(t *testing.T) {
	rt := &fakeRuntime{stats: []domain.TaskStat{
		{TaskID: 1, TaskTryID: 1, ExecutionTime: seconds(2)},
		{TaskID: 2, TaskTryID: 1, ExecutionTime: seconds(4)},
		{TaskID: 3, TaskTryID: 1}, // failed try, no execution time
	}}
	ts := newTestServer(rt)
	defer ts.Close()

	resp := get(t, ts, "/api/task-execution-time")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Points         []viz.Point `json:"points"`
		XDomain        [2]float64  `json:"x_domain"`
		YDomain        [2]float64  `json:"y_domain"`
		XTickValues    []float64   `json:"x_tick_values"`
		YTickValues    []float64   `json:"y_tick_values"`
		XTickFormatter string      `json:"x_tick_formatter"`
		YTickFormatter string      `json:"y_tick_formatter"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, []viz.Point{{1, 2}, {2, 4}}, body.Points)
	assert.Equal(t, [2]float64{1, 2}, body.XDomain)
	assert.Equal(t, [2]float64{2, 4}, body.YDomain)
	assert.NotEmpty(t, body.XTickValues)
	assert.NotEmpty(t, body.YTickValues)
	assert.Equal(t, "d", body.XTickFormatter)
	assert.Equal(t, ".2f", body.YTickFormatter)

	// The freshness middleware ran before the handler.
	assert.Equal(t, 1, rt.reloads)
}

func TestChartNoTemplateBound(t *testing.T) {
	ts := newTestServer(&fakeRuntime{})
	defer ts.Close()

	resp := get(t, ts, "/api/task-execution-time")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "no dataset bound", body["error"])
}

func TestChartNoData(t *testing.T) {
	ts := newTestServer(&fakeRuntime{stats: []domain.TaskStat{
		{TaskID: 1, TaskTryID: 1}, // no metrics at all
	}})
	defer ts.Close()

	for _, path := range []string{
		"/api/task-execution-time",
		"/api/task-response-time",
		"/api/task-retrieval-time",
		"/api/task-execution-time/export-csv",
	} {
		resp := get(t, ts, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestResponseTimeChartSelectsMetric(t *testing.T) {
	ts := newTestServer(&fakeRuntime{stats: []domain.TaskStat{
		{TaskID: 5, TaskTryID: 1, ResponseTime: seconds(1.5), ExecutionTime: seconds(9)},
	}})
	defer ts.Close()

	resp := get(t, ts, "/api/task-response-time")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Points []viz.Point `json:"points"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []viz.Point{{5, 1.5}}, body.Points)
}

func TestExecutionTimeCSV(t *testing.T) {
	ts := newTestServer(&fakeRuntime{stats: []domain.TaskStat{
		{TaskID: 1, TaskTryID: 1, ExecutionTime: seconds(2)},
		{TaskID: 2, TaskTryID: 1, ExecutionTime: seconds(4.5)},
	}})
	defer ts.Close()

	resp := get(t, ts, "/api/task-execution-time/export-csv")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "task_execution_time.csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Task ID,Execution Time\n1,2\n2,4.5\n", string(body))
}

func TestFreshnessFailureStillServes(t *testing.T) {
	rt := &fakeRuntime{
		stats:     []domain.TaskStat{{TaskID: 1, TaskTryID: 1, ExecutionTime: seconds(2)}},
		reloadErr: domain.ErrReloadFailed,
	}
	ts := newTestServer(rt)
	defer ts.Close()

	// A broken reload must not break the read path; the published
	// snapshot is still served.
	resp := get(t, ts, "/api/task-execution-time")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEnsureTemplateEndpoint(t *testing.T) {
	t.Run("switched", func(t *testing.T) {
		ts := newTestServer(&fakeRuntime{ensureOK: true})
		defer ts.Close()

		resp := get(t, ts, "/api/runtime-template/run1")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "run1", body["template"])
	})

	t.Run("busy", func(t *testing.T) {
		ts := newTestServer(&fakeRuntime{ensureOK: false})
		defer ts.Close()

		resp := get(t, ts, "/api/runtime-template/run1")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("reload failure", func(t *testing.T) {
		ts := newTestServer(&fakeRuntime{ensureErr: domain.ErrReloadFailed})
		defer ts.Close()

		resp := get(t, ts, "/api/runtime-template/run1")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(&fakeRuntime{})
	defer ts.Close()

	resp := get(t, ts, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
