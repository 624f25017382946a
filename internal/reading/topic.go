// Package reading validates picks against a shuffle session and composes the
// natural-language reading for each chosen card.
package reading

import "strings"

// Topic is one of the fixed question-intent categories.
type Topic int

const (
	TopicDirection Topic = iota
	TopicRelationship
	TopicCareer
	TopicMoney
	TopicGrowth
	TopicEmotional
)

// Label returns the phrase interpolated into the reading when the topic is
// named.
func (t Topic) Label() string {
	switch t {
	case TopicRelationship:
		return "love and connection"
	case TopicCareer:
		return "work and ambition"
	case TopicMoney:
		return "money and security"
	case TopicGrowth:
		return "growth and learning"
	case TopicEmotional:
		return "your inner weather"
	default:
		return "the road ahead"
	}
}

func (t Topic) String() string {
	switch t {
	case TopicRelationship:
		return "relationship"
	case TopicCareer:
		return "career"
	case TopicMoney:
		return "money"
	case TopicGrowth:
		return "growth"
	case TopicEmotional:
		return "emotional"
	default:
		return "direction"
	}
}

type topicRule struct {
	topic    Topic
	keywords []string
}

// topicRules are evaluated in order; the first rule with a matching keyword
// wins. Matching is raw substring containment in both languages, not word
// boundaries. Keep the lists data-driven so new categories stay additive.
var topicRules = []topicRule{
	{TopicRelationship, []string{
		"爱", "恋", "感情", "喜欢", "暗恋", "分手", "复合", "结婚", "他", "她",
		"love", "relationship", "crush", "partner", "marriage", "breakup", "date",
	}},
	{TopicCareer, []string{
		"工作", "事业", "职", "老板", "同事", "面试", "升", "跳槽", "创业",
		"work", "career", "job", "boss", "promotion", "interview", "startup",
	}},
	{TopicMoney, []string{
		"钱", "财", "收入", "投资", "债", "薪", "买房",
		"money", "wealth", "income", "invest", "debt", "salary", "finance",
	}},
	{TopicGrowth, []string{
		"学", "成长", "考试", "进步", "目标", "习惯", "自律",
		"learn", "study", "growth", "exam", "goal", "habit", "improve",
	}},
	{TopicEmotional, []string{
		"情绪", "焦虑", "难过", "孤独", "压力", "迷茫", "累", "失眠",
		"anxious", "sad", "lonely", "stress", "tired", "lost", "overwhelm", "mood",
	}},
}

// DetectTopic classifies a question into a topic. Every input maps to exactly
// one topic; questions that match nothing fall back to Direction.
func DetectTopic(question string) Topic {
	q := strings.ToLower(question)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.topic
			}
		}
	}
	return TopicDirection
}
