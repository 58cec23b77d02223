package assessment_test

import (
	"testing"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/assessment"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

func strPtr(s string) *string { return &s }

func practiceQuestion() model.AssessmentQuestion {
	return model.AssessmentQuestion{
		ID:            "q1",
		Type:          model.QuestionSingleChoice,
		Question:      "Pick one",
		Options:       []string{"A", "B", "C"},
		CorrectAnswer: strPtr("B"),
	}
}

// ── Grade ──────────────────────────────────────────────────────────────────

func TestGrade_Correct(t *testing.T) {
	got := assessment.Grade(practiceQuestion(), "B")
	if !got.Graded || !got.Correct {
		t.Errorf("Grade(..., \"B\") = %+v, want graded and correct", got)
	}
}

func TestGrade_Incorrect(t *testing.T) {
	for _, sel := range []string{"A", "C"} {
		got := assessment.Grade(practiceQuestion(), sel)
		if !got.Graded || got.Correct {
			t.Errorf("Grade(..., %q) = %+v, want graded and incorrect", sel, got)
		}
	}
}

func TestGrade_NoCorrectAnswerIsNeutral(t *testing.T) {
	q := practiceQuestion()
	q.CorrectAnswer = nil
	for _, sel := range []string{"A", "B", "C", "anything"} {
		got := assessment.Grade(q, sel)
		if got.Graded || got.Correct {
			t.Errorf("Grade(ungraded, %q) = %+v, want neutral result", sel, got)
		}
	}
}

// ── PickRandom ─────────────────────────────────────────────────────────────

func TestPickRandom_EmptyPool(t *testing.T) {
	if _, ok := assessment.PickRandom(nil); ok {
		t.Error("PickRandom(nil) should report no question")
	}
}

func TestPickRandom_StaysInPool(t *testing.T) {
	pool := []model.AssessmentQuestion{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		q, ok := assessment.PickRandom(pool)
		if !ok {
			t.Fatal("PickRandom returned no question from a non-empty pool")
		}
		if q.ID != "a" && q.ID != "b" && q.ID != "c" {
			t.Fatalf("PickRandom returned a question outside the pool: %q", q.ID)
		}
		seen[q.ID] = true
	}
	// 200 draws over 3 questions should hit every one of them.
	if len(seen) != 3 {
		t.Errorf("PickRandom covered %d of 3 pool questions in 200 draws", len(seen))
	}
}

// ── FindQuestion / RemoveQuestion ──────────────────────────────────────────

func treeFixture() *model.Assessment {
	return &model.Assessment{
		ID: "as1",
		Sections: []model.AssessmentSection{
			{ID: "s1", Questions: []model.AssessmentQuestion{{ID: "q1"}, {ID: "q2"}}},
			{ID: "s2", Questions: []model.AssessmentQuestion{{ID: "q3"}}},
		},
	}
}

func TestFindQuestion_AcrossSections(t *testing.T) {
	a := treeFixture()
	for _, id := range []string{"q1", "q2", "q3"} {
		q, ok := assessment.FindQuestion(a, id)
		if !ok || q.ID != id {
			t.Errorf("FindQuestion(%q) = (%q, %v), want found", id, q.ID, ok)
		}
	}
	if _, ok := assessment.FindQuestion(a, "missing"); ok {
		t.Error("FindQuestion(\"missing\") should not be found")
	}
}

func TestRemoveQuestion_SecondSection(t *testing.T) {
	a := treeFixture()
	if !assessment.RemoveQuestion(a, "q3") {
		t.Fatal("RemoveQuestion(\"q3\") should succeed")
	}
	if len(a.Sections[1].Questions) != 0 {
		t.Errorf("section s2 still has %d questions", len(a.Sections[1].Questions))
	}
	if len(a.Sections[0].Questions) != 2 {
		t.Errorf("section s1 was touched: %d questions", len(a.Sections[0].Questions))
	}
}

func TestRemoveQuestion_Unknown(t *testing.T) {
	a := treeFixture()
	if assessment.RemoveQuestion(a, "nope") {
		t.Error("RemoveQuestion of an unknown id should return false")
	}
	if len(a.Sections[0].Questions)+len(a.Sections[1].Questions) != 3 {
		t.Error("RemoveQuestion of an unknown id must not mutate the tree")
	}
}
