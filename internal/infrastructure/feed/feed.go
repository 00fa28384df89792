// Package feed reads the archive's Atom feed to list recently published entries.
package feed

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is one recently published entry.
type Item struct {
	Number    int
	Title     string
	Published string
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Comix/1.0"
	fp.Client = &http.Client{}
	return fp.ParseURLWithContext(url, ctx)
}

// Recent fetches the feed and returns its entries, newest first, skipping
// entries whose number cannot be derived from the entry link.
func Recent(ctx context.Context, url string, timeout time.Duration) ([]Item, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url is empty")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		number, ok := NumberFromLink(entry.Link)
		if !ok {
			continue
		}
		published := entry.Published
		if published == "" {
			published = entry.Updated
		}
		items = append(items, Item{
			Number:    number,
			Title:     strings.TrimSpace(entry.Title),
			Published: published,
		})
	}
	return items, nil
}

// NumberFromLink extracts the entry number from a canonical entry page link
// such as "https://xkcd.com/614/".
func NumberFromLink(link string) (int, bool) {
	link = strings.TrimSpace(link)
	link = strings.TrimSuffix(link, "/")
	idx := strings.LastIndexByte(link, '/')
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(link[idx+1:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
