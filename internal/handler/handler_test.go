package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sis/internal/auth"
)

// testRouter wires only the auth service; requests must not reach the
// repositories.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	authSvc := auth.NewService(nil, "sis-test", "secret", time.Hour)
	h := New(authSvc, nil, nil, nil, nil)
	r := gin.New()
	h.Register(r, "secret", "sis-test")
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestLoginMissingFields(t *testing.T) {
	r := testRouter()
	for _, body := range []string{
		`{}`,
		`{"userId":"S1001"}`,
		`{"userId":"S1001","password":"pw"}`,
		`{"password":"pw","role":"student"}`,
	} {
		w := postJSON(r, "/api/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Equal(t, "ID, password, and role are required.", messageOf(t, w))
	}
}

func TestLoginInvalidRole(t *testing.T) {
	r := testRouter()
	w := postJSON(r, "/api/login", `{"userId":"S1001","password":"pw","role":"teacher"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid role specified.", messageOf(t, w))
}

func TestLoginMalformedJSON(t *testing.T) {
	r := testRouter()
	w := postJSON(r, "/api/login", `{"userId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := testRouter()
	for _, path := range []string{
		"/api/admin/dashboard-stats",
		"/api/admin/courses-overview",
		"/api/admin/reports-data",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path: %s", path)
		assert.NotEmpty(t, messageOf(t, w))
	}
}

func TestAdminRoutesRejectStudentToken(t *testing.T) {
	r := testRouter()
	token, _, err := auth.Issue("S1001", "student", "sis-test", "secret", time.Hour)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard-stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateEnrollmentMissingFields(t *testing.T) {
	r := testRouter()
	w := postJSON(r, "/api/enrollments", `{"student_id":"S1001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "student_id, course_id and semester_id are required.", messageOf(t, w))
}

func TestCreateStudentMissingFields(t *testing.T) {
	r := testRouter()
	w := postJSON(r, "/api/students", `{"student_id":"S1001","first_name":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, messageOf(t, w))
}

func TestCreateStudentBadAdmissionDate(t *testing.T) {
	r := testRouter()
	w := postJSON(r, "/api/students", `{
		"student_id":"S1001","first_name":"Ada","last_name":"Lovelace",
		"email":"ada@sis.edu","password":"pw","admission_date":"23-01-2024"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "admission_date must be YYYY-MM-DD.", messageOf(t, w))
}

func TestCreateCourseMissingFields(t *testing.T) {
	r := testRouter()
	w := postJSON(r, "/api/courses", `{"course_id":"CS101"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, messageOf(t, w))
}
