package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/services"
	"resume-analyzer/internal/utils"
)

func newReportApp() *fiber.App {
	app := fiber.New()
	handler := NewReportHandler(services.NewPDFReportService(), utils.NewLogger("error"))
	app.Post("/api/v1/report", handler.HandleDownloadReport)
	return app
}

func postReport(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleDownloadReport_Success(t *testing.T) {
	app := newReportApp()

	resp := postReport(t, app, `{"atsScore":75,"strengths":["a"],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Resume_Analysis_Report_")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, body)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestHandleDownloadReport_InvalidPayload(t *testing.T) {
	app := newReportApp()

	resp := postReport(t, app, "not json")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleDownloadReport_RejectsOutOfRangeScore(t *testing.T) {
	app := newReportApp()

	resp := postReport(t, app, `{"atsScore":150,"strengths":["a"],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleDownloadReport_RejectsEmptyStrengths(t *testing.T) {
	app := newReportApp()

	resp := postReport(t, app, `{"atsScore":50,"strengths":[],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
