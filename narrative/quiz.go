// Package narrative drives the land-phase stage gate from a short sequence
// of free-text prompts. Each prompt is accepted when the answer contains any
// of its keywords; correct answers push the gate's progress target forward.
package narrative

import (
	"strings"

	"github.com/pthm-cable/genesis/evolution"
)

// Prompt is one quiz question with its accepted keywords and the land-phase
// progress reached by answering it.
type Prompt struct {
	Question       string
	Keywords       []string
	ProgressTarget float64
}

// Quiz walks a fixed prompt sequence against the land gate.
type Quiz struct {
	prompts []Prompt
	gate    *evolution.Gate
	index   int
}

// NewQuiz creates a quiz over prompts, advancing gate on correct answers.
func NewQuiz(prompts []Prompt, gate *evolution.Gate) *Quiz {
	return &Quiz{prompts: prompts, gate: gate}
}

// Current returns the active prompt. ok is false once all prompts are done.
func (q *Quiz) Current() (Prompt, bool) {
	if q.index >= len(q.prompts) {
		return Prompt{}, false
	}
	return q.prompts[q.index], true
}

// Done reports whether every prompt has been answered.
func (q *Quiz) Done() bool {
	return q.index >= len(q.prompts)
}

// Answered returns how many prompts have been answered so far.
func (q *Quiz) Answered() int {
	return q.index
}

// Answer checks text against the current prompt. A correct answer advances
// both the quiz and the gate and returns true. Answers after the last
// prompt, or with no keyword match, return false and change nothing.
func (q *Quiz) Answer(text string) bool {
	prompt, ok := q.Current()
	if !ok {
		return false
	}
	if !matches(text, prompt.Keywords) {
		return false
	}
	q.index++
	q.gate.Advance(prompt.ProgressTarget)
	return true
}

// matches reports whether the answer contains any keyword,
// case-insensitively.
func matches(text string, keywords []string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
