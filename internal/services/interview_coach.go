package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jeff9497/Job8earch/internal/entities"
)

const interviewCoachPersona = "You are an experienced career coach specializing in interview preparation. " +
	"Provide practical, actionable advice."

const defaultExperienceLevel = "mid-level"

type InterviewGuidance struct {
	Success  bool   `json:"success"`
	Guidance string `json:"guidance,omitempty"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company,omitempty"`
	Error    string `json:"error,omitempty"`
}

type InterviewCoach struct {
	gateway chatGateway
}

func NewInterviewCoach(gateway chatGateway) *InterviewCoach {
	return &InterviewCoach{gateway: gateway}
}

func (c *InterviewCoach) Prepare(ctx context.Context, jobTitle, company, experience string) InterviewGuidance {

	if experience == "" {
		experience = defaultExperienceLevel
	}

	result := c.gateway.Send(ctx, entities.ChatRequest{
		UserMessage:  interviewPrompt(jobTitle, company, experience),
		SystemPrompt: interviewCoachPersona,
	})

	if !result.Success {
		return InterviewGuidance{JobTitle: jobTitle, Company: company, Error: result.Error}
	}

	return InterviewGuidance{
		Success:  true,
		Guidance: result.Content,
		JobTitle: jobTitle,
		Company:  company,
	}
}

func interviewPrompt(jobTitle, company, experience string) string {

	var b strings.Builder
	fmt.Fprintf(&b, "Help me prepare for a %s interview", jobTitle)
	if company != "" {
		fmt.Fprintf(&b, " at %s", company)
	}
	fmt.Fprintf(&b, ".\nMy experience level: %s\n", experience)
	b.WriteString(`
Please provide:
1. Common interview questions for this role
2. Technical questions I should expect
3. How to showcase relevant skills
4. Questions I should ask the interviewer
5. Tips for demonstrating cultural fit
6. Salary negotiation advice for this role

Make it practical and actionable.`)
	return b.String()
}
