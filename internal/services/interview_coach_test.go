package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_InterviewCoach_Prepare_ShouldBeSuccessful(t *testing.T) {

	gateway := &mockGateway{}
	gateway.On("Send", mock.Anything, mock.MatchedBy(func(req entities.ChatRequest) bool {
		return req.SystemPrompt == interviewCoachPersona &&
			strings.Contains(req.UserMessage, "Data Scientist interview at Analytics Pro") &&
			strings.Contains(req.UserMessage, "My experience level: senior")
	})).Return(entities.ChatResult{Success: true, Content: "practice these"}).Once()

	coach := NewInterviewCoach(gateway)

	guidance := coach.Prepare(context.Background(), "Data Scientist", "Analytics Pro", "senior")

	assert.True(t, guidance.Success)
	assert.Equal(t, "practice these", guidance.Guidance)
	assert.Equal(t, "Data Scientist", guidance.JobTitle)
	assert.Equal(t, "Analytics Pro", guidance.Company)
	gateway.AssertExpectations(t)
}

func Test_InterviewCoach_Prepare_WithoutExperience_ShouldDefaultToMidLevel(t *testing.T) {

	gateway := &mockGateway{}
	gateway.On("Send", mock.Anything, mock.MatchedBy(func(req entities.ChatRequest) bool {
		return strings.Contains(req.UserMessage, "My experience level: mid-level") &&
			!strings.Contains(req.UserMessage, " at ")
	})).Return(entities.ChatResult{Success: true, Content: "ok"}).Once()

	coach := NewInterviewCoach(gateway)

	coach.Prepare(context.Background(), "UX Designer", "", "")

	gateway.AssertExpectations(t)
}

func Test_InterviewCoach_Prepare_WhenGatewayFails_ShouldPropagateError(t *testing.T) {

	gateway := &mockGateway{}
	gateway.On("Send", mock.Anything, mock.Anything).
		Return(entities.ChatResult{Error: msgRateLimited}).Once()

	coach := NewInterviewCoach(gateway)

	guidance := coach.Prepare(context.Background(), "UX Designer", "Design Studio", "")

	assert.False(t, guidance.Success)
	assert.Equal(t, msgRateLimited, guidance.Error)
	assert.Empty(t, guidance.Guidance)
}
