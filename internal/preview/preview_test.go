package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestHandleLayoutSuccess(t *testing.T) {
	irFile := tempIR(t, `{"kind":0,"nodes":{"a":{"id":"a","label":"A"},"b":{"id":"b","label":"B"}},"nodeOrder":["a","b"],"edges":[{"from":"a","to":"b"}]}`)
	pv := newTestPreviewer(t, irFile)

	req := httptest.NewRequest(http.MethodGet, "/layout.json", nil)
	rec := httptest.NewRecorder()

	pv.handleLayout(rec, req)

	assert.EqualValuesf(t, rec.Code, http.StatusOK, "status code")
	assert.EqualValuesf(t, rec.Header().Get("Content-Type"), "application/json", "Content-Type")
	assert.Truef(t, strings.Contains(rec.Body.String(), `"Width"`), "body should contain a Width field")
}

func TestHandleLayoutInvalidIR(t *testing.T) {
	irFile := tempIR(t, `not json`)
	pv := newTestPreviewer(t, irFile)

	req := httptest.NewRequest(http.MethodGet, "/layout.json", nil)
	rec := httptest.NewRecorder()

	pv.handleLayout(rec, req)

	assert.EqualValuesf(t, rec.Code, http.StatusInternalServerError, "status code")
	assert.Truef(t, strings.Contains(rec.Body.String(), "invalid IR"), "body should describe the IR error")
}

func TestHandleIndexServesEmbeddedHTML(t *testing.T) {
	irFile := tempIR(t, `{}`)
	pv := newTestPreviewer(t, irFile)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	pv.handleIndex(rec, req)

	assert.EqualValuesf(t, rec.Code, http.StatusOK, "status code")
	assert.Truef(t, strings.Contains(rec.Body.String(), "<html"), "body should contain <html")
}

func tempIR(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ir.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func newTestPreviewer(t *testing.T, irFile string) *Previewer {
	t.Helper()
	pv, err := New(Config{
		File:   irFile,
		Port:   "0",
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	if err != nil {
		t.Fatalf("failed to create previewer: %v", err)
	}
	return pv
}
