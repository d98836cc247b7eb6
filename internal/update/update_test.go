package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func releaseServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/vnd.github+json" {
			t.Errorf("unexpected Accept header %q", r.Header.Get("Accept"))
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestCheckNewer(t *testing.T) {
	url := releaseServer(t, http.StatusOK, `{"tag_name": "v1.2.0"}`)
	res := NewChecker(url).Check(context.Background(), "v1.0.0")
	if res == nil {
		t.Fatal("expected result")
	}
	if res.LatestVersion != "1.2.0" || res.Current {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCheckUpToDate(t *testing.T) {
	url := releaseServer(t, http.StatusOK, `{"tag_name": "v1.0.0"}`)
	res := NewChecker(url).Check(context.Background(), "1.0.0")
	if res == nil || !res.Current {
		t.Errorf("expected current result, got %+v", res)
	}
}

func TestCheckFailuresReturnNil(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"bad json", http.StatusOK, "{"},
		{"empty tag", http.StatusOK, `{"tag_name": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := releaseServer(t, tt.status, tt.body)
			if res := NewChecker(url).Check(context.Background(), "1.0.0"); res != nil {
				t.Errorf("expected nil, got %+v", res)
			}
		})
	}
}

func TestNewCheckerDefaultURL(t *testing.T) {
	if c := NewChecker(""); c.url != releasesURL {
		t.Errorf("expected default url, got %s", c.url)
	}
}
