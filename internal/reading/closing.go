package reading

import (
	"strings"

	"arcana/internal/platform/random"
)

// ClosingComposer produces the standalone closing line appended after the
// per-card readings. It is stateless and independent of any card or question.
type ClosingComposer struct {
	rng random.Source
}

func NewClosingComposer(rng random.Source) *ClosingComposer {
	return &ClosingComposer{rng: rng}
}

// Compose picks one fragment from each of the four closing lists.
func (c *ClosingComposer) Compose() string {
	a := closingA[c.rng.Intn(len(closingA))]
	b := closingB[c.rng.Intn(len(closingB))]
	cc := closingC[c.rng.Intn(len(closingC))]
	d := closingD[c.rng.Intn(len(closingD))]
	return strings.Join([]string{a + b, cc, d}, " ")
}
