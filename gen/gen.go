package main

import (
	"github.com/archquiz/go-fp32/quiz"
	cbg "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := cbg.WriteTupleEncodersToFile("../quiz/cbor_gen.go", "quiz",
		quiz.Operands{},
		quiz.Round{},
		quiz.Answer{},
		quiz.AnswerKey{},
		quiz.Question{},
	); err != nil {
		panic(err)
	}
}
