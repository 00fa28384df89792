package preview

import (
	"errors"
	"testing"
)

func TestAvailable(t *testing.T) {
	original := LookPathFunc
	defer func() { LookPathFunc = original }()

	LookPathFunc = func(name string) (string, error) { return "/usr/bin/chafa", nil }
	if !Available() {
		t.Error("expected Available when chafa resolves")
	}

	LookPathFunc = func(name string) (string, error) { return "", errors.New("not found") }
	if Available() {
		t.Error("expected not Available when chafa is missing")
	}
}

func TestRenderWithoutChafa(t *testing.T) {
	original := LookPathFunc
	defer func() { LookPathFunc = original }()
	LookPathFunc = func(name string) (string, error) { return "", errors.New("not found") }

	if _, err := Render("https://example.com/i.png", 60); err == nil {
		t.Fatal("expected error when chafa is missing")
	}
}
