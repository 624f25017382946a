package reading

import "strings"

// Tone is the card-sentiment category used to pick template fragments.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSupport
	ToneChallenge
)

func (t Tone) String() string {
	switch t {
	case ToneSupport:
		return "support"
	case ToneChallenge:
		return "challenge"
	default:
		return "neutral"
	}
}

// Challenge marks are checked before support marks so a card matching both
// reads as challenging. Lists carry full card names and synonyms in both
// languages; matching is substring containment over name+en.
var challengeMarks = []string{
	"tower", "devil", "death", "moon", "hanged", "judgement",
	"three of swords", "ten of swords", "five of cups", "five of pentacles",
	"塔", "恶魔", "死神", "月亮", "倒吊", "审判",
	"宝剑三", "宝剑十", "圣杯五", "星币五",
}

var supportMarks = []string{
	"sun", "star", "world", "lovers", "empress", "wheel of fortune",
	"ace of cups", "ten of cups", "nine of cups",
	"太阳", "星星", "世界", "恋人", "皇后", "命运之轮",
	"圣杯一", "圣杯九", "圣杯十",
}

// CardTone classifies a card by its combined localized and English names.
// First match wins; cards matching neither list read as neutral.
func CardTone(name, en string) Tone {
	joined := strings.ToLower(name + " " + en)
	for _, mark := range challengeMarks {
		if strings.Contains(joined, mark) {
			return ToneChallenge
		}
	}
	for _, mark := range supportMarks {
		if strings.Contains(joined, mark) {
			return ToneSupport
		}
	}
	return ToneNeutral
}
