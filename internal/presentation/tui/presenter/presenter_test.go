package presenter

import (
	"strings"
	"testing"

	"github.com/tesso57/comix/internal/domain/comic"
	"github.com/tesso57/comix/internal/infrastructure/feed"
)

func TestItemMethods(t *testing.T) {
	i := Item{Number: 614, TitleText: "Woodpecker", Published: "2009-07-24"}

	if i.FilterValue() != "Woodpecker" {
		t.Error("FilterValue mismatch")
	}
	if i.Title() != "#614 Woodpecker" {
		t.Errorf("Title = %q", i.Title())
	}
	if i.Description() != "2009-07-24" {
		t.Errorf("Description = %q", i.Description())
	}
}

func TestBuildRecentItems(t *testing.T) {
	entries := []feed.Item{
		{Number: 3101, Title: "B"},
		{Number: 3100, Title: "A"},
	}
	items := BuildRecentItems(entries)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	first, ok := items[0].(*Item)
	if !ok || first.Number != 3101 {
		t.Fatalf("unexpected first item %v", items[0])
	}
}

func TestDetail(t *testing.T) {
	c := comic.Comic{
		Number:     614,
		Title:      "Woodpecker",
		SafeTitle:  "Woodpecker",
		AltText:    "If you don't have an extension cord I can get that for you.",
		Day:        "24", Month: "7", Year: "2009",
		ImageURL:   "https://imgs.xkcd.com/comics/woodpecker.png",
		Transcript: "[[A man with a beret sits at a table.]]",
	}

	got := Detail(DetailProps{Comic: c, Width: 60, Accent: "205", Dim: "240"})

	for _, want := range []string{
		"#614: Woodpecker",
		"Published 2009-7-24",
		"https://imgs.xkcd.com/comics/woodpecker.png",
		"extension cord",
		"Transcript",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("detail missing %q:\n%s", want, got)
		}
	}
}

func TestDetailPrefersPreviewOverImageLink(t *testing.T) {
	c := comic.Comic{Number: 1, Title: "T", ImageURL: "https://example.com/i.png"}

	got := Detail(DetailProps{Comic: c, Preview: "<rendered image>", Width: 60})

	if !strings.Contains(got, "<rendered image>") {
		t.Error("preview not rendered")
	}
	if strings.Contains(got, "Image: https://example.com/i.png") {
		t.Error("image link should be hidden when a preview is shown")
	}
}

func TestDetailOmitsEmptySections(t *testing.T) {
	c := comic.Comic{Number: 1, Title: "T", ImageURL: "https://example.com/i.png"}

	got := Detail(DetailProps{Comic: c, Width: 60})

	for _, absent := range []string{"Transcript", "News", "Published"} {
		if strings.Contains(got, absent) {
			t.Errorf("detail should omit %q for empty fields:\n%s", absent, got)
		}
	}
}
