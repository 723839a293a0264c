// Package conch holds the Magic Conch's rules: which messages ask it a question
// and what it may answer.
package conch

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// TriggerPrefix is what a message has to start with to consult the conch.
const TriggerPrefix = "/magicconch"

// Greeting is returned to anyone who GETs the webhook.
const Greeting = "All hail the Magic Conch!"

var phrases = []string{
	"Maybe someday.",
	"Nothing.",
	"Neither.",
	"I don't think so.",
	"Yes.",
	"No.",
	"Try asking again.",
}

// DefaultPhrases returns a copy of the conch's answers.
func DefaultPhrases() []string {
	out := make([]string, len(phrases))
	copy(out, phrases)
	return out
}

// IsTriggered reports whether text asks the conch a question.
// The match is a case sensitive prefix, so "/magicconchfoo" counts.
func IsTriggered(text string) bool {
	return strings.HasPrefix(text, TriggerPrefix)
}

// PhraseChooser picks answers uniformly at random from a fixed list.
type PhraseChooser struct {
	phrases []string
	rng     *rand.Rand
}

// NewPhraseChooser creates a PhraseChooser over the given phrases.
// A nil rng uses the package level math/rand/v2 source.
func NewPhraseChooser(phrases []string, rng *rand.Rand) (*PhraseChooser, error) {
	if len(phrases) == 0 {
		return nil, errors.New("phrase chooser needs at least one phrase")
	}
	p := make([]string, len(phrases))
	copy(p, phrases)
	return &PhraseChooser{
		phrases: p,
		rng:     rng,
	}, nil
}

// Choose returns one of the chooser's phrases.
func (p *PhraseChooser) Choose() string {
	if p.rng == nil {
		return p.phrases[rand.IntN(len(p.phrases))]
	}
	return p.phrases[p.rng.IntN(len(p.phrases))]
}
