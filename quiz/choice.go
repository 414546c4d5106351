package quiz

import (
	"math/rand"

	"golang.org/x/xerrors"
)

// Unanswered marks a multiple-choice question without a selection
const Unanswered = -1

// Question is a multiple-choice question with exactly one correct option
type Question struct {
	Prompt  string
	Options []string
	// Answer is the index of the correct option
	Answer uint64
}

func (q Question) Validate() error {
	if len(q.Options) == 0 {
		return xerrors.Errorf("question %q has no options", q.Prompt)
	}
	if q.Answer >= uint64(len(q.Options)) {
		return xerrors.Errorf("question %q: answer index %d out of range for %d options", q.Prompt, q.Answer, len(q.Options))
	}
	return nil
}

// Correct returns the text of the correct option
func (q Question) Correct() string {
	return q.Options[q.Answer]
}

// Shuffle returns a copy of q with its options permuted, the answer index following the correct option
func (q Question) Shuffle(rng *rand.Rand) Question {
	perm := rng.Perm(len(q.Options))
	out := Question{Prompt: q.Prompt, Options: make([]string, len(q.Options))}
	for to, from := range perm {
		out.Options[to] = q.Options[from]
		if uint64(from) == q.Answer {
			out.Answer = uint64(to)
		}
	}
	return out
}

// ChoiceVerdict is the outcome of one multiple-choice question
type ChoiceVerdict struct {
	Selected int
	Correct  bool
	Feedback string
}

// GradeChoices grades one selection per question, Unanswered counting as wrong
func GradeChoices(questions []Question, selected []int) ([]ChoiceVerdict, Score, error) {
	if len(questions) != len(selected) {
		return nil, Score{}, xerrors.Errorf("got %d selections for %d questions", len(selected), len(questions))
	}

	verdicts := make([]ChoiceVerdict, len(questions))
	score := Score{Total: len(questions)}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, Score{}, xerrors.Errorf("question %d: %w", i, err)
		}
		v := ChoiceVerdict{Selected: selected[i]}
		if selected[i] >= 0 && uint64(selected[i]) == q.Answer {
			v.Correct = true
			v.Feedback = "Correct!"
			score.Correct++
		} else {
			v.Feedback = "Wrong (Correct: " + q.Correct() + ")"
		}
		verdicts[i] = v
	}
	return verdicts, score, nil
}
