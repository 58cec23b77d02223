// Package seed implements the destructive reset surface: it clears all five
// collections and repopulates them with generated sample data. Exposed only
// outside production builds.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/pipeline"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/slug"
)

const candidateCount = 1000

// assessedJobs is how many active jobs get a seeded assessment.
const assessedJobs = 10

// Stats summarizes one reset run.
type Stats struct {
	Jobs        int `json:"jobs"`
	Candidates  int `json:"candidates"`
	Assessments int `json:"assessments"`
}

// Run clears every collection and inserts the generated dataset in a single
// transaction, so a failed reset leaves the previous data intact.
func Run(ctx context.Context, pool *pgxpool.Pool) (*Stats, error) {
	now := time.Now().UTC()
	threeMonthsAgo := now.Add(-90 * 24 * time.Hour)

	jobs := generateJobs(threeMonthsAgo, now)
	active := activeJobs(jobs)
	if len(active) == 0 {
		// rand made every job archived; flip the first one so candidates
		// have something to apply to
		jobs[0].Status = model.JobStatusActive
		active = jobs[:1]
	}
	candidates := generateCandidates(active, threeMonthsAgo, now)
	assessments := generateAssessments(active)

	err := runTx(ctx, pool, func(tx pgx.Tx) error {
		for _, table := range []string{
			"jobs", "candidates", "candidate_timeline", "assessments", "assessment_responses",
		} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		batch := &pgx.Batch{}
		for _, j := range jobs {
			batch.Queue(`
INSERT INTO jobs (id, title, slug, status, tags, description, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				j.ID, j.Title, j.Slug, j.Status, j.Tags, j.Description, j.Order, j.CreatedAt, j.UpdatedAt)
		}
		for _, c := range candidates {
			batch.Queue(`
INSERT INTO candidates (id, name, email, phone, job_id, stage, applied_at, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				c.ID, c.Name, c.Email, c.Phone, c.JobID, c.Stage, c.AppliedAt, c.Notes)
			// one timeline entry at the current stage keeps the audit
			// invariant true from the first read
			batch.Queue(`
INSERT INTO candidate_timeline (id, candidate_id, stage, ts)
VALUES ($1, $2, $3, $4)`,
				uuid.NewString(), c.ID, c.Stage, c.AppliedAt)
		}
		for _, a := range assessments {
			batch.Queue(`
INSERT INTO assessments (id, job_id, title, description, sections, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				a.ID, a.JobID, a.Title, a.Description, a.Sections, a.CreatedAt, a.UpdatedAt)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("seed batch stmt %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Stats{
		Jobs:        len(jobs),
		Candidates:  len(candidates),
		Assessments: len(assessments),
	}, nil
}

func runTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func generateJobs(from, to time.Time) []model.Job {
	jobs := make([]model.Job, 0, len(jobTitles))
	for i, title := range jobTitles {
		status := model.JobStatusActive
		if rand.Float64() <= 0.3 {
			status = model.JobStatusArchived
		}
		desc := fmt.Sprintf("We are looking for an experienced %s to join our team.", title)
		jobs = append(jobs, model.Job{
			ID:          uuid.NewString(),
			Title:       title,
			Slug:        slug.Derive(title),
			Status:      status,
			Tags:        randomTags(1 + rand.Intn(3)),
			Description: &desc,
			Order:       i,
			CreatedAt:   randomTime(from, to),
			UpdatedAt:   randomTime(from, to),
		})
	}
	return jobs
}

func activeJobs(jobs []model.Job) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Status == model.JobStatusActive {
			out = append(out, j)
		}
	}
	return out
}

func generateCandidates(active []model.Job, from, to time.Time) []model.Candidate {
	stages := pipeline.Stages()
	out := make([]model.Candidate, 0, candidateCount)
	for i := 0; i < candidateCount; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		job := active[rand.Intn(len(active))]
		phone := fmt.Sprintf("+1%d", 1000000000+rand.Int63n(9000000000))

		c := model.Candidate{
			ID:        uuid.NewString(),
			Name:      first + " " + last,
			Email:     fmt.Sprintf("%s.%s%d@email.com", lower(first), lower(last), i),
			Phone:     &phone,
			JobID:     job.ID,
			Stage:     stages[rand.Intn(len(stages))],
			AppliedAt: randomTime(from, to),
		}
		if rand.Float64() > 0.7 {
			note := "Strong candidate with relevant experience"
			c.Notes = &note
		}
		out = append(out, c)
	}
	return out
}

func generateAssessments(active []model.Job) []model.Assessment {
	n := assessedJobs
	if len(active) < n {
		n = len(active)
	}

	out := make([]model.Assessment, 0, n)
	for _, job := range active[:n] {
		desc := fmt.Sprintf("Role-specific assessment for %s", job.Title)
		technical := append(append([]bankQuestion{}, roleBanks[detectRole(job.Title)]...), generalTechnical...)

		a := model.Assessment{
			ID:          uuid.NewString(),
			JobID:       job.ID,
			Title:       fmt.Sprintf("%s Assessment", job.Title),
			Description: &desc,
			Sections: []model.AssessmentSection{
				buildSection("Technical Skills", "Evaluate role-specific competencies", 0, technical),
				buildSection("Behavioral Questions", "Assess cultural fit and soft skills", 1, behavioral),
			},
			CreatedAt: job.CreatedAt,
			UpdatedAt: job.UpdatedAt,
		}
		out = append(out, a)
	}
	return out
}

func buildSection(title, description string, order int, bank []bankQuestion) model.AssessmentSection {
	questions := make([]model.AssessmentQuestion, 0, len(bank))
	for i, b := range bank {
		answer := b.Answer
		questions = append(questions, model.AssessmentQuestion{
			ID:            uuid.NewString(),
			Type:          model.QuestionSingleChoice,
			Question:      b.Question,
			Required:      true,
			Options:       b.Options,
			CorrectAnswer: &answer,
			Order:         i,
		})
	}
	return model.AssessmentSection{
		ID:          uuid.NewString(),
		Title:       title,
		Description: &description,
		Order:       order,
		Questions:   questions,
	}
}

func randomTags(n int) []string {
	shuffled := append([]string{}, jobTags...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func randomTime(from, to time.Time) time.Time {
	delta := to.Sub(from)
	return from.Add(time.Duration(rand.Int63n(int64(delta))))
}

func lower(s string) string { return strings.ToLower(s) }
