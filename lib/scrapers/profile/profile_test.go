package profile

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/profile.html
var profilePage string

//go:embed testdata/changed_layout.html
var changedLayoutPage string

var janeDoe = Profile{
	Name:       "Jane Doe",
	RegNum:     "CS2021001",
	Department: "Computer Science",
}

func TestParse(t *testing.T) {
	profile, err := Parse(context.Background(), strings.NewReader(profilePage))
	require.NoError(t, err)
	if diff := cmp.Diff(janeDoe, profile); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChangedLayout(t *testing.T) {
	profile, err := Parse(context.Background(), strings.NewReader(changedLayoutPage))
	require.ErrorIs(t, err, ErrExtractionFailed)
	require.Contains(t, err.Error(), "name, reg_num, department")
	require.Equal(t, Profile{}, profile)
}

func TestParsePartial(t *testing.T) {
	page := strings.Replace(profilePage, "Computer Science", "   ", 1)
	profile, err := Parse(context.Background(), strings.NewReader(page))
	require.ErrorIs(t, err, ErrExtractionFailed)
	require.Contains(t, err.Error(), "department")
	require.Equal(t, "CS2021001", profile.RegNum)
}

func TestParseTrimsOnlyEdges(t *testing.T) {
	page := strings.Replace(profilePage, "Jane Doe", "Jane   Doe", 1)
	page = strings.Replace(page, "Reg No: CS2021001", "Reg No:CS2021001 Reg No:", 1)
	profile, err := Parse(context.Background(), strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, "Jane   Doe", profile.Name)
	require.Equal(t, "CS2021001", profile.RegNum)
	require.Equal(t, "Computer Science", profile.Department)
}

func TestClientFetch(t *testing.T) {
	var userAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent.Store(r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/profile":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(profilePage))
		case "/slow":
			time.Sleep(500 * time.Millisecond)
			w.Write([]byte(profilePage))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 200 * time.Millisecond, UserAgent: "attendance-test"})

	t.Run("ok", func(t *testing.T) {
		profile, err := client.Fetch(context.Background(), server.URL+"/profile")
		require.NoError(t, err)
		require.Equal(t, janeDoe, profile)
		require.Equal(t, "attendance-test", userAgent.Load())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), server.URL+"/missing")
		require.Error(t, err)
		require.Contains(t, err.Error(), "404")
		require.False(t, errors.Is(err, ErrExtractionFailed))
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), server.URL+"/slow")
		require.Error(t, err)
	})
}
