package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jeff9497/Job8earch/internal/entities"
)

const skillsAdvisorPersona = "You are a career advisor and skills analyst. " +
	"Provide comprehensive, practical advice about job requirements and career development."

// fallbackSkills maps common lower-cased job titles to an advisory summary
// served when the gateway is unavailable. The fallback is static text, never
// attributed to the AI.
var fallbackSkills = map[string]string{
	"software developer": "Programming languages (JavaScript, Python, Java), Version control (Git), " +
		"Problem-solving, Testing, Debugging",
	"data scientist": "Python/R, SQL, Machine Learning, Statistics, Data Visualization, Critical thinking",
	"product manager": "Strategic thinking, User research, Analytics, Communication, Project management, " +
		"Market analysis",
	"ux designer": "Design tools (Figma, Sketch), User research, Prototyping, Usability testing, Visual design",
	"marketing manager": "Digital marketing, Analytics, Content creation, Campaign management, SEO/SEM, " +
		"Communication",
}

const fallbackUnavailable = "Skills analysis unavailable. Please try again or contact support."

type chatGateway interface {
	Send(ctx context.Context, request entities.ChatRequest) entities.ChatResult
}

type SkillsAnalysis struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis,omitempty"`
	JobTitle string `json:"jobTitle"`
	Error    string `json:"error,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

type SkillsAdvisor struct {
	gateway chatGateway
}

func NewSkillsAdvisor(gateway chatGateway) *SkillsAdvisor {
	return &SkillsAdvisor{gateway: gateway}
}

// Analyze requests a six-section skills breakdown for a job title. On gateway
// failure the result carries the static fallback alongside the error.
func (a *SkillsAdvisor) Analyze(ctx context.Context, jobTitle, jobDescription string) SkillsAnalysis {

	result := a.gateway.Send(ctx, entities.ChatRequest{
		UserMessage:  skillsPrompt(jobTitle, jobDescription),
		SystemPrompt: skillsAdvisorPersona,
	})

	if !result.Success {
		return SkillsAnalysis{
			JobTitle: jobTitle,
			Error:    result.Error,
			Fallback: FallbackSkills(jobTitle),
		}
	}

	return SkillsAnalysis{
		Success:  true,
		Analysis: result.Content,
		JobTitle: jobTitle,
	}
}

// FallbackSkills returns the static lookup-table entry for a job title, or a
// generic unavailable message.
func FallbackSkills(jobTitle string) string {
	if skills, ok := fallbackSkills[strings.ToLower(jobTitle)]; ok {
		return skills
	}
	return fallbackUnavailable
}

func skillsPrompt(jobTitle, jobDescription string) string {

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the skills required for the job title: %q\n", jobTitle)
	if jobDescription != "" {
		fmt.Fprintf(&b, "Job Description: %s\n", jobDescription)
	}
	b.WriteString(`
Please provide a comprehensive breakdown including:
1. Essential Technical Skills (must-have)
2. Preferred Technical Skills (nice-to-have)
3. Soft Skills
4. Experience Level Required
5. Typical Career Path
6. Learning Resources/Certifications

Format the response in a clear, structured way that's easy to read.`)
	return b.String()
}
