package programs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

func TestRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mount, err := New(modulehandler.NewTestBase(), sitecontent.Default()).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.ProgramsPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.Programs, want: http.StatusOK},
		{method: http.MethodPost, path: routepath.Programs, want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: routepath.ProgramsPrefix + "outreach", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		mount.Handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestIndexAnchorsEveryProgram(t *testing.T) {
	t.Parallel()

	mount, _ := New(modulehandler.NewTestBase(), sitecontent.Default()).Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Programs, nil))
	body := rr.Body.String()
	for _, id := range []string{"outreach", "training", "research", "advocacy"} {
		if !strings.Contains(body, `id="`+id+`"`) {
			t.Fatalf("body missing anchor %q", id)
		}
	}
}
