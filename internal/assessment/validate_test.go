package assessment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/assessment"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestValidateQuestion_ChoiceNeedsOptions(t *testing.T) {
	q := model.AssessmentQuestion{
		ID:       "q1",
		Type:     model.QuestionSingleChoice,
		Question: "Pick",
		Options:  []string{"only one"},
	}
	assert.Error(t, assessment.ValidateQuestion(q))

	q.Options = []string{"A", "B"}
	assert.NoError(t, assessment.ValidateQuestion(q))
}

func TestValidateQuestion_CorrectAnswerMustBeAnOption(t *testing.T) {
	q := model.AssessmentQuestion{
		ID:            "q1",
		Type:          model.QuestionMultiChoice,
		Question:      "Pick",
		Options:       []string{"A", "B"},
		CorrectAnswer: strPtr("C"),
	}
	assert.Error(t, assessment.ValidateQuestion(q))

	q.CorrectAnswer = strPtr("B")
	assert.NoError(t, assessment.ValidateQuestion(q))
}

func TestValidateQuestion_UnknownType(t *testing.T) {
	q := model.AssessmentQuestion{ID: "q1", Type: "dropdown", Question: "?"}
	assert.Error(t, assessment.ValidateQuestion(q))
}

func TestValidateStructure_DependsOnMustResolve(t *testing.T) {
	a := &model.Assessment{
		Sections: []model.AssessmentSection{
			{ID: "s1", Questions: []model.AssessmentQuestion{
				{ID: "q1", Type: model.QuestionShortText, Question: "name?"},
			}},
			{ID: "s2", Questions: []model.AssessmentQuestion{
				{
					ID: "q2", Type: model.QuestionShortText, Question: "details?",
					ConditionalLogic: &model.Condition{DependsOn: "q1", ShowWhen: model.ShowWhen{"yes"}},
				},
			}},
		},
	}
	// cross-section reference is legal
	require.NoError(t, assessment.ValidateStructure(a))

	a.Sections[1].Questions[0].ConditionalLogic.DependsOn = "ghost"
	assert.Error(t, assessment.ValidateStructure(a))

	a.Sections[1].Questions[0].ConditionalLogic.DependsOn = "q2"
	assert.Error(t, assessment.ValidateStructure(a), "self reference must be rejected")
}

func TestIsVisible(t *testing.T) {
	q := model.AssessmentQuestion{
		ID:               "q2",
		Type:             model.QuestionShortText,
		ConditionalLogic: &model.Condition{DependsOn: "q1", ShowWhen: model.ShowWhen{"yes", "maybe"}},
	}

	assert.False(t, assessment.IsVisible(q, map[string]any{}), "hidden until dependency answered")
	assert.False(t, assessment.IsVisible(q, map[string]any{"q1": "no"}))
	assert.True(t, assessment.IsVisible(q, map[string]any{"q1": "yes"}))
	assert.True(t, assessment.IsVisible(q, map[string]any{"q1": []any{"no", "maybe"}}), "multi-choice overlap")

	q.ConditionalLogic = nil
	assert.True(t, assessment.IsVisible(q, map[string]any{}), "unconditional questions are always visible")
}

func TestValidateAnswer_Required(t *testing.T) {
	q := model.AssessmentQuestion{ID: "q1", Type: model.QuestionShortText, Required: true}
	assert.Error(t, assessment.ValidateAnswer(q, "", nil))
	assert.Error(t, assessment.ValidateAnswer(q, nil, nil))
	assert.NoError(t, assessment.ValidateAnswer(q, "hello", nil))

	q.Required = false
	assert.NoError(t, assessment.ValidateAnswer(q, "", nil))
}

func TestValidateAnswer_TextLengthBounds(t *testing.T) {
	q := model.AssessmentQuestion{
		ID:         "q1",
		Type:       model.QuestionLongText,
		Validation: &model.ValidationRules{MinLength: intPtr(5), MaxLength: intPtr(10)},
	}
	assert.Error(t, assessment.ValidateAnswer(q, "hey", nil))
	assert.Error(t, assessment.ValidateAnswer(q, "way too long answer", nil))
	assert.NoError(t, assessment.ValidateAnswer(q, "just fine", nil))
}

func TestValidateAnswer_NumericRange(t *testing.T) {
	q := model.AssessmentQuestion{
		ID:         "q1",
		Type:       model.QuestionNumeric,
		Validation: &model.ValidationRules{Min: floatPtr(0), Max: floatPtr(40)},
	}
	assert.Error(t, assessment.ValidateAnswer(q, "not a number", nil))
	assert.Error(t, assessment.ValidateAnswer(q, "-1", nil))
	assert.Error(t, assessment.ValidateAnswer(q, "41", nil))
	assert.NoError(t, assessment.ValidateAnswer(q, "12", nil))
	assert.NoError(t, assessment.ValidateAnswer(q, float64(12), nil), "numbers arrive as float64 from JSON")
}

func TestValidateAnswer_ChoiceMembership(t *testing.T) {
	q := model.AssessmentQuestion{
		ID:      "q1",
		Type:    model.QuestionSingleChoice,
		Options: []string{"A", "B"},
	}
	assert.Error(t, assessment.ValidateAnswer(q, "C", nil))
	assert.Error(t, assessment.ValidateAnswer(q, []any{"A", "B"}, nil), "single choice takes one option")
	assert.NoError(t, assessment.ValidateAnswer(q, "A", nil))

	q.Type = model.QuestionMultiChoice
	assert.NoError(t, assessment.ValidateAnswer(q, []any{"A", "B"}, nil))
	assert.Error(t, assessment.ValidateAnswer(q, []any{"A", "C"}, nil))
}

func TestValidateAnswer_HiddenQuestionRejected(t *testing.T) {
	q := model.AssessmentQuestion{
		ID:               "q2",
		Type:             model.QuestionShortText,
		ConditionalLogic: &model.Condition{DependsOn: "q1", ShowWhen: model.ShowWhen{"yes"}},
	}
	assert.Error(t, assessment.ValidateAnswer(q, "surprise", map[string]any{"q1": "no"}))
	assert.NoError(t, assessment.ValidateAnswer(q, "expected", map[string]any{"q1": "yes"}))
}
