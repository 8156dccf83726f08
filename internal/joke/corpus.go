// Package joke holds the fixed corpus of pre-authored jokes offered to users
// whose messages were classified as sad.
package joke

import (
	"errors"
	"math/rand"
)

// NativeLanguage is the language the corpus entries are written in.
// Translation is skipped entirely when the target language matches it.
const NativeLanguage = "English"

var defaultJokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"I told my wife she was drawing her eyebrows too high. She looked surprised.",
	"Why did the scarecrow win an award? Because he was outstanding in his field!",
	"I'm reading a book about anti-gravity. It's impossible to put down!",
	"What do you call a fake noodle? An impasta!",
	"Why don't eggs tell jokes? They'd crack each other up.",
	"I used to hate facial hair, but then it grew on me.",
	"What do you call a bear with no teeth? A gummy bear!",
	"Why did the bicycle fall over? Because it was two-tired!",
	"I would tell you a joke about construction, but I'm still working on it.",
	"What did the ocean say to the beach? Nothing, it just waved.",
	"Why did the math book look so sad? Because it had too many problems.",
}

// Corpus is an immutable list of joke texts with uniform random selection.
// Reads are safe for unlimited concurrency.
type Corpus struct {
	jokes []string
}

// NewCorpus wraps the provided joke list. An empty corpus is a configuration
// error and is rejected at construction time rather than per request.
func NewCorpus(jokes []string) (*Corpus, error) {
	if len(jokes) == 0 {
		return nil, errors.New("joke corpus must not be empty")
	}
	copied := make([]string, len(jokes))
	copy(copied, jokes)
	return &Corpus{jokes: copied}, nil
}

// Default returns the built-in corpus.
func Default() *Corpus {
	c, err := NewCorpus(defaultJokes)
	if err != nil {
		panic(err)
	}
	return c
}

// Random picks one entry uniformly. Every call is independent; previously
// served jokes are not excluded.
func (c *Corpus) Random() string {
	return c.jokes[rand.Intn(len(c.jokes))]
}

// Len reports the corpus size.
func (c *Corpus) Len() int {
	return len(c.jokes)
}
