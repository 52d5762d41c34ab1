package services

import (
	"context"
	"fmt"

	"github.com/Jeff9497/Job8earch/internal/entities"
)

const jobAnalystPersona = "You are a career advisor and job market analyst. " +
	"Provide honest, practical assessments of job opportunities."

type JobAnalysis struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis,omitempty"`
	JobID    string `json:"jobId"`
	Error    string `json:"error,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

type JobAnalyst struct {
	gateway chatGateway
}

func NewJobAnalyst(gateway chatGateway) *JobAnalyst {
	return &JobAnalyst{gateway: gateway}
}

// Analyze requests six insight categories for a posting. Degradation is
// symmetric with SkillsAdvisor: on gateway failure the result carries an
// advisory summary built from the posting's own fields.
func (a *JobAnalyst) Analyze(ctx context.Context, posting entities.JobPosting) JobAnalysis {

	result := a.gateway.Send(ctx, entities.ChatRequest{
		UserMessage:  analysisPrompt(posting),
		SystemPrompt: jobAnalystPersona,
	})

	if !result.Success {
		return JobAnalysis{
			JobID:    posting.ID,
			Error:    result.Error,
			Fallback: analysisFallback(posting),
		}
	}

	return JobAnalysis{
		Success:  true,
		Analysis: result.Content,
		JobID:    posting.ID,
	}
}

func analysisPrompt(posting entities.JobPosting) string {
	return fmt.Sprintf(`Analyze this job posting and provide insights:

Job Title: %s
Company: %s
Location: %s
Salary: %s
Job Type: %s
Description: %s

Please provide:
1. Key skills and qualifications needed
2. Career level this role is suitable for
3. Growth opportunities this role might offer
4. Red flags or concerns (if any)
5. How competitive this role might be
6. Tips for standing out as a candidate

Be honest and practical in your assessment.`,
		posting.Title,
		posting.Employer,
		posting.Location(),
		entities.FormatSalary(posting.MinimumSalary, posting.MaximumSalary),
		entities.FormatJobType(posting.Types),
		posting.Description)
}

func analysisFallback(posting entities.JobPosting) string {
	return fmt.Sprintf("AI analysis is currently unavailable. Posting summary: %s at %s (%s), %s, %s. "+
		"Review the full description and research the employer before applying.",
		posting.Title,
		posting.Employer,
		posting.Location(),
		entities.FormatSalary(posting.MinimumSalary, posting.MaximumSalary),
		entities.FormatJobType(posting.Types))
}
