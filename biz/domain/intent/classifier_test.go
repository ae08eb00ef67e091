package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewKeywordClassifier()
	cases := []struct {
		in   string
		want Intent
	}{
		{"I don't understand this", Confused},
		{"I DON’T GET IT", Confused},
		{"this is confusing... I'm confused", Confused},
		{"got it, thanks", Confident},
		{"ok that makes sense", Confident},
		{"ok next", Advance},
		{"ready!", Advance},
		{"please continue", Advance},
		{"I understand now", Advance},
		{"what is a hypotenuse?", Unclassified},
		{"   ", Unclassified},
		{"", Unclassified},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Classify(tc.in), tc.in)
	}
}

func TestClassifyScanOrder(t *testing.T) {
	c := NewKeywordClassifier()
	// 同时命中时 Confused 优先
	assert.Equal(t, Confused, c.Classify("got it... no wait, I'm confused"))
	assert.Equal(t, Confident, c.Classify("got it, next please"))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "advance", Advance.String())
	assert.Equal(t, "confused", Confused.String())
	assert.Equal(t, "confident", Confident.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}
