package reading

import (
	"fmt"
	"strings"

	"arcana/internal/catalog"
	"arcana/internal/platform/random"
)

// questionDisplayLimit caps how much of the raw question is echoed back inside
// the opener. Classification always sees the full text.
const questionDisplayLimit = 16

// Engine composes one reading per card from weighted template fragments.
// Given a deterministic Source the output is reproducible; with the default
// crypto-seeded source it intentionally is not.
type Engine struct {
	rng random.Source
}

func NewEngine(rng random.Source) *Engine {
	return &Engine{rng: rng}
}

// Compose classifies the question and the card, then fills the five fragment
// slots: opener, frame, domain hint, action, closer. Cards with keywords get
// one extra clause naming a random keyword. Every input has a defined branch;
// Compose never fails.
func (e *Engine) Compose(card catalog.Card, question string) string {
	topic := DetectTopic(question)
	tone := CardTone(card.Name, card.En)

	opener := strings.ReplaceAll(e.pick(openers), "{question}", shortenQuestion(question))
	frame := strings.ReplaceAll(e.pick(frames[tone]), "{topic}", topic.Label())

	hintList, ok := hints[topic]
	if !ok {
		hintList = hints[TopicDirection]
	}

	parts := []string{
		opener,
		frame,
		e.pick(hintList),
		e.pick(actions[tone]),
		e.pick(closers),
	}

	if len(card.Keywords) > 0 {
		kw := card.Keywords[e.rng.Intn(len(card.Keywords))]
		parts = append(parts, fmt.Sprintf("The card names %q outright.", kw))
	}

	return strings.Join(parts, " ")
}

func (e *Engine) pick(candidates []string) string {
	return candidates[e.rng.Intn(len(candidates))]
}

// shortenQuestion truncates the question for display. Counting runes keeps
// multibyte questions from splitting mid-character.
func shortenQuestion(question string) string {
	runes := []rune(question)
	if len(runes) <= questionDisplayLimit {
		return question
	}
	return string(runes[:questionDisplayLimit]) + "…"
}
