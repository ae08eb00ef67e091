package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	r := NewResolver()
	topic := Topic{Id: "m1", Name: "Linear Equations"}

	curated := r.Explain(topic, "One-step equations")
	assert.Contains(t, curated.Narration, "x + 5 = 12")
	assert.Contains(t, curated.Board, "One-Step Equations")

	generated := r.Explain(topic, "Equations with brackets")
	assert.Contains(t, generated.Narration, "Equations with brackets")
	assert.Contains(t, generated.Narration, "Linear Equations")
	assert.Contains(t, generated.Board, "Key Points")
}

func TestExamplePracticeFallback(t *testing.T) {
	r := NewResolver()
	topic := Topic{Name: "Vectors"}

	ex := r.Example(topic)
	assert.Contains(t, ex.Narration, "Vectors")
	assert.Contains(t, ex.Board, "Step-by-step")

	p := r.Practice(topic)
	assert.Contains(t, p.Narration, "Vectors")
	assert.Contains(t, p.Board, "Answer: ?")
}

func TestCuratedExample(t *testing.T) {
	r := NewResolver()
	topic := Topic{Name: "Pythagoras Theorem"}
	assert.NotEqual(t, r.Example(Topic{Name: "Vectors"}).Board, r.Example(topic).Board)
	assert.NotContains(t, r.Practice(topic).Board, "Your question here")
}

func TestAlternativeAndHint(t *testing.T) {
	r := NewResolver()
	assert.Contains(t, r.Alternative(Topic{Name: "Linear Equations"}), "puzzle")
	assert.Contains(t, r.Alternative(Topic{Name: "Vectors"}), "different approach")
	assert.Contains(t, r.Hint(Topic{Name: "Vectors"}, "how?"), "**Vectors**")
}
