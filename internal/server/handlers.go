package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jeff9497/Job8earch/internal/catalog"
	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
	Context   string `json:"context"`
	Model     string `json:"model"`
}

type chatResponse struct {
	SessionID string `json:"sessionId"`
	Success   bool   `json:"success"`
	Response  string `json:"response,omitempty"`
	Model     string `json:"model,omitempty"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

type skillsRequest struct {
	JobTitle       string `json:"jobTitle" binding:"required"`
	JobDescription string `json:"jobDescription"`
}

type interviewRequest struct {
	JobTitle   string `json:"jobTitle" binding:"required"`
	Company    string `json:"company"`
	Experience string `json:"experience"`
}

type sessionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// searchJobs keeps the query parameter names of the original job-board API:
// keywords, locationName, resultsToTake, resultsToSkip.
func (h *Handler) searchJobs(c *gin.Context) {

	query := entities.SearchQuery{
		Keywords: c.Query("keywords"),
		Location: c.Query("locationName"),
		Take:     intQuery(c, "resultsToTake", 20),
		Skip:     intQuery(c, "resultsToSkip", 0),
	}

	result := h.catalog.Search(c.Request.Context(), query)
	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories})
}

func (h *Handler) locations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": catalog.Locations})
}

func (h *Handler) jobDetails(c *gin.Context) {
	view, found := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": view})
}

func (h *Handler) analyzeJob(c *gin.Context) {
	posting, found := h.catalog.Posting(c.Request.Context(), c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, h.analyst.Analyze(c.Request.Context(), *posting))
}

func (h *Handler) analyzeSkills(c *gin.Context) {
	var request skillsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "jobTitle is required"})
		return
	}
	c.JSON(http.StatusOK, h.skills.Analyze(c.Request.Context(), request.JobTitle, request.JobDescription))
}

func (h *Handler) prepareInterview(c *gin.Context) {
	var request interviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "jobTitle is required"})
		return
	}
	c.JSON(http.StatusOK, h.coach.Prepare(c.Request.Context(), request.JobTitle, request.Company, request.Experience))
}

// sendChat appends the user message to the session log, performs the
// completion, and appends the assistant reply (or the classified error) so
// the conversation history always reflects what the user saw.
func (h *Handler) sendChat(c *gin.Context) {

	var request chatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "message is required"})
		return
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = h.sessions.Create()
	}

	h.sessions.Append(sessionID, entities.ChatMessage{
		Role:      entities.RoleUser,
		Content:   request.Message,
		Timestamp: time.Now().UTC(),
	})

	reply := h.chat.Chat(c.Request.Context(), request.Message, request.Context, request.Model)

	assistant := entities.ChatMessage{Role: entities.RoleAssistant, Timestamp: reply.Timestamp}
	if reply.Success {
		assistant.Content = reply.Response
		assistant.Model = reply.Model
	} else {
		assistant.Content = reply.Error
		assistant.IsError = true
	}
	h.sessions.Append(sessionID, assistant)

	c.JSON(http.StatusOK, chatResponse{
		SessionID: sessionID,
		Success:   reply.Success,
		Response:  reply.Response,
		Model:     reply.Model,
		Timestamp: reply.Timestamp.Format(time.RFC3339),
		Error:     reply.Error,
	})
}

func (h *Handler) resetChat(c *gin.Context) {
	var request sessionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "sessionId is required"})
		return
	}
	messages := h.sessions.Reset(request.SessionID)
	c.JSON(http.StatusOK, gin.H{"sessionId": request.SessionID, "messages": messages})
}

func (h *Handler) chatHistory(c *gin.Context) {
	sessionID := c.Query("sessionId")
	messages, found := h.sessions.History(sessionID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "messages": messages})
}

func (h *Handler) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": h.chat.Models()})
}

func (h *Handler) modelAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, h.availability.Report(c.Request.Context()))
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
