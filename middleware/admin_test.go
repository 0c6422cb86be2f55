package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func adminRouter(serverToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", AdminRequired(serverToken), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminRequired(t *testing.T) {
	cases := []struct {
		name        string
		serverToken string
		headerToken string
		wantStatus  int
	}{
		{"valid token", "s3cret", "s3cret", http.StatusOK},
		{"wrong token", "s3cret", "nope", http.StatusUnauthorized},
		{"missing header", "s3cret", "", http.StatusUnauthorized},
		{"unconfigured server", "", "anything", http.StatusInternalServerError},
		{"unconfigured server no header", "", "", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := adminRouter(tc.serverToken)

			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			if tc.headerToken != "" {
				req.Header.Set(AdminTokenHeader, tc.headerToken)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tc.wantStatus, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestAdminRequiredErrorBodies(t *testing.T) {
	router := adminRouter("")
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(AdminTokenHeader, "anything")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	want := `"ADMIN_TOKEN not configured on server"`
	if body := recorder.Body.String(); !strings.Contains(body, want) {
		t.Fatalf("expected body to contain %s, got %s", want, body)
	}
}
