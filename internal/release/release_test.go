package release

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is a TagSource that counts lookups
type stubSource struct {
	tag   Tag
	err   error
	calls int
}

func (s *stubSource) LatestTag(context.Context) (Tag, error) {
	s.calls++
	return s.tag, s.err
}

func newTagServer(t *testing.T, tagsStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/repos/dryan/css-smart-grid/tags", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(tagsStatus)
		fmt.Fprintf(w, `[{"name":"4.1.0","commit":{"sha":"abc","url":"%s/commits/abc"}},{"name":"4.0.0","commit":{"url":"%s/commits/def"}}]`, srv.URL, srv.URL)
	})
	mux.HandleFunc("/commits/abc", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"sha":"abc","commit":{"committer":{"name":"x","date":"2013-05-01T12:30:00Z"}}}`)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGitHubTagsLatestTag(t *testing.T) {
	srv := newTagServer(t, http.StatusOK)

	tag, err := NewGitHubTags(srv.URL, "", srv.Client()).LatestTag(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4.1.0", tag.Name)
	assert.Equal(t, time.Date(2013, 5, 1, 12, 30, 0, 0, time.UTC), tag.Date.UTC())
}

func TestGitHubTagsErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := newTagServer(t, http.StatusForbidden)
		_, err := NewGitHubTags(srv.URL, "", srv.Client()).LatestTag(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("no tags", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[]`)
		}))
		defer srv.Close()

		_, err := NewGitHubTags(srv.URL, "someone/empty", srv.Client()).LatestTag(context.Background())
		assert.ErrorContains(t, err, "no tags published for someone/empty")
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `<html>`)
		}))
		defer srv.Close()

		_, err := NewGitHubTags(srv.URL, "", srv.Client()).LatestTag(context.Background())
		assert.ErrorContains(t, err, "invalid JSON")
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := newTagServer(t, http.StatusOK)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewGitHubTags(srv.URL, "", srv.Client()).LatestTag(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestResolve(t *testing.T) {
	tagDate := time.Date(2013, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		requested   string
		date        string
		wantVersion string
		wantDate    time.Time
		wantCalls   int
	}{
		{
			name:        "latest tag",
			wantVersion: "4.1.0",
			wantDate:    tagDate,
			wantCalls:   1,
		},
		{
			name:        "bump",
			requested:   "+1",
			wantVersion: "4.1.1",
			wantDate:    now,
			wantCalls:   1,
		},
		{
			name:        "explicit version",
			requested:   "5.0.0",
			wantVersion: "5.0.0",
			wantDate:    now,
			wantCalls:   0,
		},
		{
			name:        "explicit version and date",
			requested:   "5.0.0",
			date:        "2020-02-29",
			wantVersion: "5.0.0",
			wantDate:    time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC),
			wantCalls:   0,
		},
		{
			name:        "latest tag with date override",
			date:        "2020-02-29",
			wantVersion: "4.1.0",
			wantDate:    time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC),
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &stubSource{tag: Tag{Name: "4.1.0", Date: tagDate}}

			info, err := Resolve(context.Background(), src, tt.requested, tt.date, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.True(t, tt.wantDate.Equal(info.Date), "date %s", info.Date)
			assert.Equal(t, tt.wantCalls, src.calls)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	now := time.Now()

	_, err := Resolve(context.Background(), &stubSource{err: errors.New("offline")}, "", "", now)
	assert.ErrorContains(t, err, "look up latest version: offline")

	_, err = Resolve(context.Background(), &stubSource{tag: Tag{Name: "4.1.x"}}, "+1", "", now)
	assert.ErrorContains(t, err, "cannot increment version")

	_, err = Resolve(context.Background(), &stubSource{}, "4.1.0", "01/05/2013", now)
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}

func TestBump(t *testing.T) {
	tests := map[string]string{
		"4.1.0":  "4.1.1",
		"4.1.9":  "4.1.10",
		"1.0.99": "1.0.100",
	}
	for in, want := range tests {
		got, err := Bump(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
