package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Venkatesh2304/myerpv2/internal/application/importer"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
	"github.com/Venkatesh2304/myerpv2/internal/interfaces/http/handler"
	"github.com/Venkatesh2304/myerpv2/internal/interfaces/http/middleware"
)

type stubPipeline struct {
	run       importer.RunReport
	gotTenant uuid.UUID
	gotWindow report.DateRangeArgs
	calls     int
}

func (s *stubPipeline) RunAll(_ context.Context, tenantID uuid.UUID, window report.DateRangeArgs) importer.RunReport {
	s.calls++
	s.gotTenant = tenantID
	s.gotWindow = window
	return s.run
}

func newImportRouter(t *testing.T, pipeline handler.PipelineRunner) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.RequestID())
	h := handler.NewImportHandler(pipeline, zaptest.NewLogger(t))
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func postImport(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestImportHandler_Run(t *testing.T) {
	tenantID := uuid.New()
	pipeline := &stubPipeline{
		run: importer.RunReport{
			Refreshes: []importer.RefreshResult{
				{Kind: report.KindSalesRegister, Rows: 12, Elapsed: 40 * time.Millisecond},
			},
			Imports: []importer.ImportResult{
				{Name: "sales", Outcome: importer.Outcome{EntriesInserted: 12, Deleted: 3}},
			},
			Elapsed: 50 * time.Millisecond,
		},
	}
	engine := newImportRouter(t, pipeline)

	w := postImport(engine, `{"tenant_id":"`+tenantID.String()+`","from":"2026-01-01","to":"2026-01-31"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Failed    bool `json:"failed"`
			Refreshes []struct {
				Kind string `json:"kind"`
				Rows int64  `json:"rows"`
			} `json:"refreshes"`
			Imports []struct {
				Name            string `json:"name"`
				EntriesInserted int    `json:"entries_inserted"`
				Deleted         int64  `json:"deleted"`
			} `json:"imports"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.Failed)
	require.Len(t, resp.Data.Refreshes, 1)
	assert.Equal(t, "sales_register", resp.Data.Refreshes[0].Kind)
	assert.EqualValues(t, 12, resp.Data.Refreshes[0].Rows)
	require.Len(t, resp.Data.Imports, 1)
	assert.Equal(t, 12, resp.Data.Imports[0].EntriesInserted)
	assert.EqualValues(t, 3, resp.Data.Imports[0].Deleted)

	assert.Equal(t, 1, pipeline.calls)
	assert.Equal(t, tenantID, pipeline.gotTenant)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), pipeline.gotWindow.From)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), pipeline.gotWindow.To)
}

func TestImportHandler_RunWithFailures(t *testing.T) {
	pipeline := &stubPipeline{
		run: importer.RunReport{
			Refreshes: []importer.RefreshResult{
				{Kind: report.KindGSTR1, Err: assert.AnError, Error: assert.AnError.Error()},
			},
		},
	}
	engine := newImportRouter(t, pipeline)

	w := postImport(engine, `{"tenant_id":"`+uuid.NewString()+`","from":"2026-01-01","to":"2026-01-31"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Failed bool `json:"failed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Failed)
}

func TestImportHandler_RunValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"tenant_id":`},
		{"missing tenant", `{"from":"2026-01-01","to":"2026-01-31"}`},
		{"bad tenant uuid", `{"tenant_id":"nope","from":"2026-01-01","to":"2026-01-31"}`},
		{"bad date format", `{"tenant_id":"` + uuid.NewString() + `","from":"01/01/2026","to":"2026-01-31"}`},
		{"from after to", `{"tenant_id":"` + uuid.NewString() + `","from":"2026-02-01","to":"2026-01-31"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := &stubPipeline{}
			engine := newImportRouter(t, pipeline)

			w := postImport(engine, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, pipeline.calls)

			var resp struct {
				Success bool `json:"success"`
				Error   *struct {
					Code      string `json:"code"`
					RequestID string `json:"request_id"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.NotEmpty(t, resp.Error.RequestID)
		})
	}
}
