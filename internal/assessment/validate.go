package assessment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

// ValidateQuestion checks the structural invariants of a single question:
// choice types carry at least two options, correctAnswer (when present) is
// one of them, and lengths/bounds are coherent.
func ValidateQuestion(q model.AssessmentQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question text is required")
	}
	switch q.Type {
	case model.QuestionSingleChoice, model.QuestionMultiChoice,
		model.QuestionShortText, model.QuestionLongText,
		model.QuestionNumeric, model.QuestionFileUpload:
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	if q.Type.IsChoice() {
		if len(q.Options) < 2 {
			return fmt.Errorf("choice question needs at least 2 options, got %d", len(q.Options))
		}
		if q.CorrectAnswer != nil && !contains(q.Options, *q.CorrectAnswer) {
			return fmt.Errorf("correct answer %q is not one of the options", *q.CorrectAnswer)
		}
	}
	if v := q.Validation; v != nil {
		if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
			return fmt.Errorf("minLength %d exceeds maxLength %d", *v.MinLength, *v.MaxLength)
		}
		if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
			return fmt.Errorf("min %v exceeds max %v", *v.Min, *v.Max)
		}
	}
	return nil
}

// ValidateStructure checks every question of every section plus cross-question
// references: conditionalLogic.dependsOn must resolve to another question id
// within the same assessment (cross-section references are allowed).
func ValidateStructure(a *model.Assessment) error {
	ids := make(map[string]bool)
	for _, sec := range a.Sections {
		for _, q := range sec.Questions {
			ids[q.ID] = true
		}
	}
	for _, sec := range a.Sections {
		for _, q := range sec.Questions {
			if err := ValidateQuestion(q); err != nil {
				return fmt.Errorf("question %s: %w", q.ID, err)
			}
			if cl := q.ConditionalLogic; cl != nil {
				if cl.DependsOn == q.ID {
					return fmt.Errorf("question %s depends on itself", q.ID)
				}
				if !ids[cl.DependsOn] {
					return fmt.Errorf("question %s depends on unknown question %s", q.ID, cl.DependsOn)
				}
			}
		}
	}
	return nil
}

// IsVisible evaluates a question's conditional logic against the answers
// captured so far. Questions without conditional logic are always visible.
func IsVisible(q model.AssessmentQuestion, answers map[string]any) bool {
	cl := q.ConditionalLogic
	if cl == nil {
		return true
	}
	given, ok := answers[cl.DependsOn]
	if !ok {
		return false
	}
	for _, v := range answerStrings(given) {
		if contains(cl.ShowWhen, v) {
			return true
		}
	}
	return false
}

// ValidateAnswer enforces the question's constraints on a submitted value:
// required presence, text length bounds, numeric range, option membership
// and conditional visibility. The UI enforces these rules client-side; the
// save path rejects invalid answers regardless.
func ValidateAnswer(q model.AssessmentQuestion, value any, answers map[string]any) error {
	if !IsVisible(q, answers) {
		return fmt.Errorf("question %s is hidden by its conditional logic", q.ID)
	}

	vals := answerStrings(value)
	empty := len(vals) == 0 || (len(vals) == 1 && strings.TrimSpace(vals[0]) == "")
	if empty {
		if q.Required {
			return fmt.Errorf("question %s requires an answer", q.ID)
		}
		return nil
	}

	switch q.Type {
	case model.QuestionSingleChoice:
		if len(vals) != 1 {
			return fmt.Errorf("single-choice question %s takes exactly one option", q.ID)
		}
		if !contains(q.Options, vals[0]) {
			return fmt.Errorf("%q is not an option of question %s", vals[0], q.ID)
		}
	case model.QuestionMultiChoice:
		for _, v := range vals {
			if !contains(q.Options, v) {
				return fmt.Errorf("%q is not an option of question %s", v, q.ID)
			}
		}
	case model.QuestionShortText, model.QuestionLongText:
		text := vals[0]
		if v := q.Validation; v != nil {
			if v.MinLength != nil && len(text) < *v.MinLength {
				return fmt.Errorf("answer to %s is shorter than %d characters", q.ID, *v.MinLength)
			}
			if v.MaxLength != nil && len(text) > *v.MaxLength {
				return fmt.Errorf("answer to %s is longer than %d characters", q.ID, *v.MaxLength)
			}
		}
	case model.QuestionNumeric:
		n, err := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		if err != nil {
			return fmt.Errorf("answer to numeric question %s is not a number", q.ID)
		}
		if v := q.Validation; v != nil {
			if v.Min != nil && n < *v.Min {
				return fmt.Errorf("answer to %s is below the minimum %v", q.ID, *v.Min)
			}
			if v.Max != nil && n > *v.Max {
				return fmt.Errorf("answer to %s is above the maximum %v", q.ID, *v.Max)
			}
		}
	}
	return nil
}

// answerStrings normalizes an answer value (string or list of strings, as
// stored in the answers map) into a string slice.
func answerStrings(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case float64:
		return []string{strconv.FormatFloat(t, 'f', -1, 64)}
	default:
		return []string{fmt.Sprint(t)}
	}
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
