package reading

// Template fragments for the five reading slots. The opener may carry a
// {question} placeholder filled with the shortened question; frames carry a
// {topic} placeholder naming the question's domain in the transition toward
// the hint. All picks are uniform over the slot's list.

var openers = []string{
	`You asked about "{question}", and this card stepped forward on its own.`,
	`Holding "{question}" in mind, the draw settled without hesitation.`,
	`The deck heard "{question}" before your hand moved.`,
	`This card surfaced the moment "{question}" was on the table.`,
	`Some cards wait to be chosen; this one was already waiting.`,
}

var frames = map[Tone][]string{
	ToneSupport: {
		`It carries a warm current, and that current runs straight toward {topic}.`,
		`Its face is turned kindly here, which bodes well for {topic}.`,
		`There is an open door in this card, and it opens onto {topic}.`,
	},
	ToneChallenge: {
		`It does not arrive gently; it presses hardest where {topic} is concerned.`,
		`There is friction in this card, and the friction gathers around {topic}.`,
		`It names an obstacle plainly, and the obstacle sits inside {topic}.`,
	},
	ToneNeutral: {
		`It holds its judgement for now, simply turning your attention to {topic}.`,
		`It neither promises nor warns; it only points steadily at {topic}.`,
		`Its message is quiet, a measured look at {topic}.`,
	},
}

var hints = map[Topic][]string{
	TopicRelationship: {
		`What passes between two people rarely moves faster than trust allows.`,
		`Someone's silence here says more than their words have.`,
		`The bond you are weighing is already answering you in small ways.`,
	},
	TopicCareer: {
		`The work in front of you is quieter than the ambition behind it.`,
		`A door at work is not locked, only unfamiliar.`,
		`What you build next will borrow from what you almost abandoned.`,
	},
	TopicMoney: {
		`What you hold loosens or tightens with your attention, not the market's.`,
		`The ledger you fear is smaller than the one you imagine.`,
		`Security grows from rhythm, not from windfall.`,
	},
	TopicGrowth: {
		`The skill you are circling is closer than the effort suggests.`,
		`Progress here is layered, not linear, and a layer just finished.`,
		`What feels like repetition is actually deepening.`,
	},
	TopicEmotional: {
		`The weather inside you is real weather; it passes the way weather does.`,
		`Naming the feeling takes half its weight.`,
		`You are more tired than wrong.`,
	},
	TopicDirection: {
		`The path is not hidden, it is simply unlit a few steps out.`,
		`Where you stand is already partway to where you are going.`,
		`The next turn matters less than the pace you take it at.`,
	},
}

var actions = map[Tone][]string{
	ToneSupport: {
		`Lean into what is already working; momentum is on your side.`,
		`Say yes a little sooner than feels natural.`,
		`Accept the opening as it is, without renegotiating it first.`,
	},
	ToneChallenge: {
		`Slow down before the narrow part; speed is what the obstacle feeds on.`,
		`Put the difficult conversation ahead of the comfortable one.`,
		`Set one thing down so your hands are free for what resists.`,
	},
	ToneNeutral: {
		`Watch for a few days before you commit either way.`,
		`Keep your current course and let the detail sharpen.`,
		`Gather one more honest opinion before deciding.`,
	},
}

var closers = []string{
	`Let that sit with you rather than be solved tonight.`,
	`Take what fits and leave the rest on the table.`,
	`The card asks for attention, not obedience.`,
	`Hold it loosely; readings are weather reports, not verdicts.`,
}

// Closing-line fragment lists. The closing is independent of any card: one
// pick from each list, joined as A+B, space, C, space, D.
var (
	closingA = []string{
		"The cards have had their say",
		"The spread settles here",
		"That is the shape of tonight's draw",
	}
	closingB = []string{
		", and the rest is yours.",
		"; the telling ends, the living continues.",
		" — what follows is written by you.",
	}
	closingC = []string{
		"Carry the one line that rang true.",
		"Keep the image that stayed with you.",
		"Remember the card that made you pause.",
	}
	closingD = []string{
		"Come back when the question changes.",
		"The deck will be here when you are.",
		"Until the next shuffle.",
	}
)
