package intent

import "strings"

// Intent 学生发言的意图
type Intent int

const (
	Unclassified Intent = iota
	Advance
	Confused
	Confident
)

func (i Intent) String() string {
	switch i {
	case Advance:
		return "advance"
	case Confused:
		return "confused"
	case Confident:
		return "confident"
	default:
		return "unclassified"
	}
}

// Classifier 意图识别, 之后可以替换为模型实现
type Classifier interface {
	Classify(utterance string) Intent
}

// rule 一类意图及其关键词
type rule struct {
	intent   Intent
	keywords []string
}

var _ Classifier = (*KeywordClassifier)(nil)

// KeywordClassifier 基于关键词的意图识别
// 按 Confused -> Confident -> Advance 的顺序扫描, 命中的第一类即为结果
type KeywordClassifier struct {
	rules []rule
}

// NewKeywordClassifier 默认关键词表
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		rules: []rule{
			{intent: Confused, keywords: []string{"don't understand", "confused", "don't get it"}},
			{intent: Confident, keywords: []string{"got it", "makes sense"}},
			{intent: Advance, keywords: []string{"got it", "understand", "ready", "next", "continue", "okay", "ok"}},
		},
	}
}

// Classify 大小写不敏感的子串匹配
func (c *KeywordClassifier) Classify(utterance string) Intent {
	text := normalize(utterance)
	if text == "" {
		return Unclassified
	}
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.intent
			}
		}
	}
	return Unclassified
}

// normalize 转小写并统一撇号, 输入法常给出 don’t
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("’", "'", "‘", "'").Replace(s)
}
