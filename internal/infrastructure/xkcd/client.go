// Package xkcd fetches archive entries from an xkcd-compatible JSON API.
package xkcd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tesso57/comix/internal/domain/comic"
)

// ErrorKind classifies fetch failures.
type ErrorKind int

const (
	// ErrNetwork means the request produced no response at all.
	ErrNetwork ErrorKind = iota
	// ErrHTTP means the server answered with a non-success status.
	ErrHTTP
	// ErrDecode means the response body violated the payload contract.
	ErrDecode
)

// Error is the failure surfaced by the client. Status is set for ErrHTTP,
// Field names the missing required field for ErrDecode.
type Error struct {
	Kind   ErrorKind
	Status int
	Field  string
	cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrHTTP:
		return fmt.Sprintf("archive responded with status %d", e.Status)
	case ErrDecode:
		if e.Field != "" {
			return fmt.Sprintf("archive payload is missing required field %q", e.Field)
		}
		return fmt.Sprintf("decode archive payload: %v", e.cause)
	default:
		return fmt.Sprintf("archive request failed: %v", e.cause)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Client talks to the archive API. The base URL is pluggable so requests can
// be routed through a CORS-style proxy or a test server in front of the
// archive's native endpoint shape.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. A nil httpClient gets a
// sane default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// payload mirrors the archive's wire format. Only num, title and img are
// required; everything else defaults to "".
type payload struct {
	Num        int    `json:"num"`
	Title      string `json:"title"`
	SafeTitle  string `json:"safe_title"`
	Alt        string `json:"alt"`
	Day        string `json:"day"`
	Month      string `json:"month"`
	Year       string `json:"year"`
	Img        string `json:"img"`
	Link       string `json:"link"`
	News       string `json:"news"`
	Transcript string `json:"transcript"`
}

// Latest fetches the most recent entry.
func (c *Client) Latest(ctx context.Context) (comic.Comic, error) {
	return c.get(ctx, c.baseURL+"/info.0.json")
}

// ByNumber fetches entry n.
func (c *Client) ByNumber(ctx context.Context, n int) (comic.Comic, error) {
	if n <= 0 {
		return comic.Comic{}, &Error{Kind: ErrDecode, Field: "num", cause: fmt.Errorf("entry number must be positive, got %d", n)}
	}
	return c.get(ctx, fmt.Sprintf("%s/%d/info.0.json", c.baseURL, n))
}

func (c *Client) get(ctx context.Context, url string) (comic.Comic, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return comic.Comic{}, &Error{Kind: ErrNetwork, cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return comic.Comic{}, &Error{Kind: ErrNetwork, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return comic.Comic{}, &Error{Kind: ErrHTTP, Status: resp.StatusCode}
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return comic.Comic{}, &Error{Kind: ErrDecode, cause: err}
	}
	return decode(p)
}

func decode(p payload) (comic.Comic, error) {
	switch {
	case p.Num <= 0:
		return comic.Comic{}, &Error{Kind: ErrDecode, Field: "num"}
	case p.Title == "":
		return comic.Comic{}, &Error{Kind: ErrDecode, Field: "title"}
	case p.Img == "":
		return comic.Comic{}, &Error{Kind: ErrDecode, Field: "img"}
	}
	return comic.Comic{
		Number:     p.Num,
		Title:      p.Title,
		SafeTitle:  p.SafeTitle,
		AltText:    p.Alt,
		Day:        p.Day,
		Month:      p.Month,
		Year:       p.Year,
		ImageURL:   p.Img,
		Link:       p.Link,
		News:       p.News,
		Transcript: p.Transcript,
	}, nil
}
