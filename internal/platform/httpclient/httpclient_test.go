package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_KeepsCookiesBetweenRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case "/me":
			c, err := r.Cookie("session")
			if err != nil || c.Value != "abc" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized, please login"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"user": "admin"})
		}
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	err = c.DoJSON(ctx, http.MethodGet, "/me", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "Unauthorized, please login", he.Message())

	require.NoError(t, c.DoJSON(ctx, http.MethodPost, "/login", nil, map[string]string{"u": "x"}, nil))

	var out map[string]string
	require.NoError(t, c.DoJSON(ctx, http.MethodGet, "me", nil, nil, &out))
	assert.Equal(t, "admin", out["user"])
}

func TestDoMultipart_SendsFieldsAndFile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"name":     r.FormValue("name"),
			"filename": hdr.Filename,
			"content":  string(b),
		})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	var out map[string]string
	err = c.DoMultipart(context.Background(), http.MethodPost, "/pets",
		map[string]string{"name": "Milo"},
		&FilePart{Field: "image", Filename: "milo.png", Body: strings.NewReader("png")},
		&out,
	)
	require.NoError(t, err)
	assert.Equal(t, "Milo", out["name"])
	assert.Equal(t, "milo.png", out["filename"])
	assert.Equal(t, "png", out["content"])
}

func TestResolveURL(t *testing.T) {
	c := New(0)
	_, err := c.ResolveURL("/pets")
	require.Error(t, err)

	got, err := c.ResolveURL("https://example.com/pets")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/pets", got)

	_, err = NewWithBaseURL("not a url", time.Second)
	require.Error(t, err)
}
