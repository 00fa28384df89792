package xkcd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const goodPayload = `{
	"num": 614,
	"title": "Woodpecker",
	"safe_title": "Woodpecker",
	"alt": "If you don't have an extension cord I can get that for you.",
	"day": "24", "month": "7", "year": "2009",
	"img": "https://imgs.xkcd.com/comics/woodpecker.png",
	"link": "", "news": "",
	"transcript": "[[A man with a beret...]]"
}`

func TestLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/info.0.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(goodPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	got, err := c.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if got.Number != 614 || got.Title != "Woodpecker" {
		t.Fatalf("unexpected comic: %+v", got)
	}
	if got.Date() != "2009-7-24" {
		t.Fatalf("unexpected date: %q", got.Date())
	}
}

func TestByNumberPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(goodPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client()) // trailing slash is normalized
	if _, err := c.ByNumber(context.Background(), 614); err != nil {
		t.Fatalf("ByNumber failed: %v", err)
	}
	if gotPath != "/614/info.0.json" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestByNumberThroughProxyPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(goodPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/proxy/xkcd", srv.Client())
	if _, err := c.ByNumber(context.Background(), 9); err != nil {
		t.Fatalf("ByNumber failed: %v", err)
	}
	if gotPath != "/proxy/xkcd/9/info.0.json" {
		t.Fatalf("proxy prefix not preserved, got %q", gotPath)
	}
}

func TestByNumberRejectsNonPositive(t *testing.T) {
	c := NewClient("http://example.invalid", nil)
	_, err := c.ByNumber(context.Background(), 0)
	var fetchErr *Error
	if !errors.As(err, &fetchErr) || fetchErr.Kind != ErrDecode {
		t.Fatalf("expected decode error for n=0, got %v", err)
	}
}

func TestHTTPErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.ByNumber(context.Background(), 99999)
	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if fetchErr.Kind != ErrHTTP || fetchErr.Status != http.StatusNotFound {
		t.Fatalf("expected http 404 error, got %+v", fetchErr)
	}
}

func TestNetworkErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, nil)
	_, err := c.Latest(context.Background())
	var fetchErr *Error
	if !errors.As(err, &fetchErr) || fetchErr.Kind != ErrNetwork {
		t.Fatalf("expected network error, got %v", err)
	}
	if fetchErr.Unwrap() == nil {
		t.Fatal("network error should carry its cause")
	}
}

func TestDecodeRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing img",
			body:      `{"num": 614, "title": "Woodpecker"}`,
			wantField: "img",
		},
		{
			name:      "missing title",
			body:      `{"num": 614, "img": "https://imgs.xkcd.com/comics/woodpecker.png"}`,
			wantField: "title",
		},
		{
			name:      "missing num",
			body:      `{"title": "Woodpecker", "img": "https://imgs.xkcd.com/comics/woodpecker.png"}`,
			wantField: "num",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, srv.Client())
			_, err := c.Latest(context.Background())
			var fetchErr *Error
			if !errors.As(err, &fetchErr) || fetchErr.Kind != ErrDecode {
				t.Fatalf("expected decode error, got %v", err)
			}
			if fetchErr.Field != tt.wantField {
				t.Fatalf("expected missing field %q, got %q", tt.wantField, fetchErr.Field)
			}
		})
	}
}

func TestDecodeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Latest(context.Background())
	var fetchErr *Error
	if !errors.As(err, &fetchErr) || fetchErr.Kind != ErrDecode {
		t.Fatalf("expected decode error for malformed body, got %v", err)
	}
}

func TestOptionalFieldsDefaultToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"num": 1, "title": "Barrel - Part 1", "img": "https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	got, err := c.ByNumber(context.Background(), 1)
	if err != nil {
		t.Fatalf("ByNumber failed: %v", err)
	}
	if got.AltText != "" || got.Transcript != "" || got.News != "" || got.Link != "" {
		t.Fatalf("optional fields should default to empty, got %+v", got)
	}
	if got.Date() != "" {
		t.Fatalf("date should be empty when parts are missing, got %q", got.Date())
	}
}
