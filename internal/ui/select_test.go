// internal/ui/select_test.go
package ui_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dsablic/ghrecap/internal/ui"
)

func TestParseSelection(t *testing.T) {
	got, err := ui.ParseSelection("1, 3", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("expected [1 3], got %v", got)
	}
}

func TestParseSelectionDropsOutOfRange(t *testing.T) {
	got, err := ui.ParseSelection("1,9,0,2", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("out-of-range indices should be silently dropped, got %v", got)
	}
}

func TestParseSelectionNonNumeric(t *testing.T) {
	for _, input := range []string{"a,2", "1,,2", "", "one"} {
		if _, err := ui.ParseSelection(input, 5); !errors.Is(err, ui.ErrInvalidSelection) {
			t.Errorf("expected ErrInvalidSelection for %q, got %v", input, err)
		}
	}
}

func TestPromptSelect(t *testing.T) {
	repos := []string{"octocat/alpha", "octocat/beta", "octocat/gamma"}

	var out bytes.Buffer
	got, err := ui.PromptSelect(repos, strings.NewReader("3,1\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"octocat/gamma", "octocat/alpha"}) {
		t.Errorf("selection order should follow the input, got %v", got)
	}

	listing := out.String()
	if !strings.Contains(listing, "1. octocat/alpha") || !strings.Contains(listing, "3. octocat/gamma") {
		t.Errorf("listing should show 1-based indices, got %q", listing)
	}
}

func TestPromptSelectInvalidInput(t *testing.T) {
	var out bytes.Buffer
	if _, err := ui.PromptSelect([]string{"a/b"}, strings.NewReader("first\n"), &out); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestPromptSelectAllOutOfRange(t *testing.T) {
	var out bytes.Buffer
	got, err := ui.PromptSelect([]string{"a/b"}, strings.NewReader("5,9\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected an empty selection, got %v", got)
	}
}
