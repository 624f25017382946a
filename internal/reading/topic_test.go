package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Topic
	}{
		{"relationship keyword", "我喜欢的人到底怎么想", TopicRelationship},
		{"relationship english", "Will this relationship last?", TopicRelationship},
		{"career keyword", "这份工作还要不要继续", TopicCareer},
		{"career english", "should I take the new job", TopicCareer},
		{"money keyword", "最近投资运势如何", TopicMoney},
		{"money english", "will my salary improve", TopicMoney},
		{"growth keyword", "考试能过吗", TopicGrowth},
		{"emotional keyword", "最近总是焦虑", TopicEmotional},
		{"no match falls back to direction", "嗯。", TopicDirection},
		{"empty question", "", TopicDirection},
		{"gibberish", "xyzzy 12345 !!!", TopicDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTopic(tt.question))
		})
	}
}

func TestDetectTopicPriorityOrder(t *testing.T) {
	// A question touching both relationship and money reads as relationship:
	// rules are evaluated in fixed order and the first match wins.
	assert.Equal(t, TopicRelationship, DetectTopic("分手后他会把钱还我吗"))
	assert.Equal(t, TopicRelationship, DetectTopic("my partner and my money"))

	// Career outranks money the same way.
	assert.Equal(t, TopicCareer, DetectTopic("换工作薪水会更高吗"))
}

func TestDetectTopicSubstringContainment(t *testing.T) {
	// Matching is containment, not word boundaries: "她" inside a longer
	// token still classifies as relationship. Preserved as observed behavior.
	assert.Equal(t, TopicRelationship, DetectTopic("关于她们的事"))
	assert.Equal(t, TopicRelationship, DetectTopic("I am beloved"))
}

func TestDetectTopicCaseInsensitive(t *testing.T) {
	assert.Equal(t, TopicMoney, DetectTopic("MONEY TROUBLES"))
}

func TestTopicLabelTotal(t *testing.T) {
	for _, topic := range []Topic{
		TopicDirection, TopicRelationship, TopicCareer,
		TopicMoney, TopicGrowth, TopicEmotional,
	} {
		assert.NotEmpty(t, topic.Label())
		assert.NotEmpty(t, topic.String())
	}
}
