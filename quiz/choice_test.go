package quiz

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineQuestion() Question {
	return Question{
		Prompt: "What is the effect of an interrupt arriving if the global interrupt bit is disabled?",
		Options: []string{
			"The kernel is entered.",
			"None of the alternatives is correct.",
			"The CPU immediately returns to user mode.",
			"Nothing, the program execution is not affected.",
			"An exception is raised, indicating an illegal interrupt.",
		},
		Answer: 3,
	}
}

func TestShuffleKeepsAnswer(t *testing.T) {
	q := pipelineQuestion()
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		s := q.Shuffle(rng)
		require.NoError(t, s.Validate())
		assert.Equal(t, q.Correct(), s.Correct())
		assert.ElementsMatch(t, q.Options, s.Options)
		assert.Equal(t, q.Prompt, s.Prompt)
	}
	// the original is left untouched
	assert.Equal(t, pipelineQuestion(), q)
}

func TestGradeChoices(t *testing.T) {
	qs := []Question{pipelineQuestion(), pipelineQuestion(), pipelineQuestion()}
	verdicts, score, err := GradeChoices(qs, []int{3, 0, Unanswered})
	require.NoError(t, err)

	assert.Equal(t, Score{Correct: 1, Total: 3}, score)
	assert.True(t, verdicts[0].Correct)
	assert.Equal(t, "Correct!", verdicts[0].Feedback)
	assert.False(t, verdicts[1].Correct)
	assert.Equal(t, "Wrong (Correct: Nothing, the program execution is not affected.)", verdicts[1].Feedback)
	assert.False(t, verdicts[2].Correct)
	assert.Equal(t, Unanswered, verdicts[2].Selected)
}

func TestQuestionCBOR(t *testing.T) {
	in := pipelineQuestion()
	var buf bytes.Buffer
	require.NoError(t, in.MarshalCBOR(&buf))

	var out Question
	require.NoError(t, out.UnmarshalCBOR(&buf))
	assert.Equal(t, in, out)
}

// NEGATIVE TESTS

func TestNegativeGradeChoices(t *testing.T) {
	_, _, err := GradeChoices([]Question{pipelineQuestion()}, nil)
	assert.Error(t, err)

	bad := pipelineQuestion()
	bad.Answer = 5
	_, _, err = GradeChoices([]Question{bad}, []int{0})
	assert.Error(t, err)

	assert.Error(t, Question{Prompt: "empty"}.Validate())
}
