package seed

import (
	"testing"
	"time"
)

func testFrom() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
func testTo() time.Time   { return time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC) }

func TestDetectRole(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Frontend Engineer", "Frontend"},
		{"UI/UX Designer", "Frontend"}, // "ui" wins before "ux"
		{"Backend Developer", "Backend"},
		{"Solutions Architect", "Frontend"}, // no keyword, falls back
		{"Data Scientist", "Data"},
		{"ML Engineer", "Data"},
		{"DevOps Engineer", "DevOps"},
		{"Cloud Architect", "DevOps"},
		{"UX Designer", "Design"},
		{"Product Manager", "PM"},
		{"QA Engineer", "Frontend"},
	}
	for _, c := range cases {
		if got := detectRole(c.title); got != c.want {
			t.Errorf("detectRole(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestCatalogSizes(t *testing.T) {
	if len(jobTitles) != 25 {
		t.Errorf("job title catalog has %d entries, want 25", len(jobTitles))
	}
	if len(roleBanks) != 6 {
		t.Errorf("role banks: %d, want 6", len(roleBanks))
	}
	for role, bank := range roleBanks {
		for _, q := range bank {
			if len(q.Options) < 2 {
				t.Errorf("%s bank question %q has %d options", role, q.Question, len(q.Options))
			}
			found := false
			for _, o := range q.Options {
				if o == q.Answer {
					found = true
				}
			}
			if !found {
				t.Errorf("%s bank question %q: answer %q not among options", role, q.Question, q.Answer)
			}
		}
	}
}

func TestGenerateAssessments_StructureIsValid(t *testing.T) {
	jobs := generateJobs(testFrom(), testTo())
	active := activeJobs(jobs)
	if len(active) == 0 {
		t.Skip("random run archived every job")
	}
	for _, a := range generateAssessments(active) {
		if len(a.Sections) != 2 {
			t.Fatalf("assessment %s has %d sections, want 2", a.Title, len(a.Sections))
		}
		for _, sec := range a.Sections {
			for i, q := range sec.Questions {
				if q.Order != i {
					t.Errorf("%s/%s question %d has order %d", a.Title, sec.Title, i, q.Order)
				}
				if q.CorrectAnswer == nil {
					t.Errorf("%s/%s question %q lacks a correct answer", a.Title, sec.Title, q.Question)
				}
			}
		}
	}
}
