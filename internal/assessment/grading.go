// Package assessment holds the pure logic of the assessment engine: practice
// grading, random question sampling, conditional visibility and answer
// validation. It performs no I/O; the repository and handlers drive it.
package assessment

import (
	"math/rand"

	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

// GradeResult is the outcome of grading one selected option.
// Graded=false means the question has no correct answer set; that is a
// neutral display state, not an error.
type GradeResult struct {
	Graded  bool `json:"graded"`
	Correct bool `json:"correct"`
}

// Grade compares the selected option against the question's correct answer
// by exact string match.
func Grade(q model.AssessmentQuestion, selected string) GradeResult {
	if q.CorrectAnswer == nil {
		return GradeResult{}
	}
	return GradeResult{Graded: true, Correct: selected == *q.CorrectAnswer}
}

// PickRandom returns a uniformly random question from the pool, or false
// when the pool is empty.
func PickRandom(pool []model.AssessmentQuestion) (model.AssessmentQuestion, bool) {
	if len(pool) == 0 {
		return model.AssessmentQuestion{}, false
	}
	return pool[rand.Intn(len(pool))], true
}

// FindQuestion looks a question up by id across all sections.
func FindQuestion(a *model.Assessment, questionID string) (model.AssessmentQuestion, bool) {
	for _, sec := range a.Sections {
		for _, q := range sec.Questions {
			if q.ID == questionID {
				return q, true
			}
		}
	}
	return model.AssessmentQuestion{}, false
}

// RemoveQuestion deletes the question from whichever section contains it.
// Removal is by id, not position, so it tolerates concurrent edits within
// the same loaded document. Returns false when the id is unknown.
func RemoveQuestion(a *model.Assessment, questionID string) bool {
	for si := range a.Sections {
		qs := a.Sections[si].Questions
		for qi, q := range qs {
			if q.ID == questionID {
				a.Sections[si].Questions = append(qs[:qi:qi], qs[qi+1:]...)
				return true
			}
		}
	}
	return false
}
