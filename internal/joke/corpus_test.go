package joke_test

import (
	"testing"

	"github.com/soulsync-ai/backend/internal/joke"
)

func TestNewCorpusRejectsEmpty(t *testing.T) {
	if _, err := joke.NewCorpus(nil); err == nil {
		t.Fatal("expected error for empty corpus")
	}
	if _, err := joke.NewCorpus([]string{}); err == nil {
		t.Fatal("expected error for empty corpus")
	}
}

func TestRandomReturnsCorpusEntry(t *testing.T) {
	entries := []string{"one", "two", "three"}
	c, err := joke.NewCorpus(entries)
	if err != nil {
		t.Fatalf("NewCorpus err: %v", err)
	}

	valid := map[string]bool{"one": true, "two": true, "three": true}
	for i := 0; i < 50; i++ {
		got := c.Random()
		if !valid[got] {
			t.Fatalf("Random returned %q, not a corpus entry", got)
		}
	}
}

func TestRandomSingleEntry(t *testing.T) {
	c, err := joke.NewCorpus([]string{"only"})
	if err != nil {
		t.Fatalf("NewCorpus err: %v", err)
	}
	if got := c.Random(); got != "only" {
		t.Fatalf("Random = %q, want only", got)
	}
}

func TestDefaultCorpusNonEmpty(t *testing.T) {
	c := joke.Default()
	if c.Len() == 0 {
		t.Fatal("default corpus is empty")
	}
	if c.Random() == "" {
		t.Fatal("default corpus served an empty joke")
	}
}
