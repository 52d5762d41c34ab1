package entities

import "time"

// SearchQuery describes one catalog search. Skip is conventionally a multiple
// of Take but that is not enforced.
type SearchQuery struct {
	Keywords string
	Location string
	Take     int
	Skip     int
}

// JobView is the display projection of a posting: formatted salary and job
// type plus a sanitized description and a tag-free truncated summary.
type JobView struct {
	ID              string    `json:"jobId"`
	Title           string    `json:"jobTitle"`
	Employer        string    `json:"employerName"`
	Location        string    `json:"locationName"`
	DescriptionHTML string    `json:"jobDescription"`
	Summary         string    `json:"jobSummary"`
	URL             string    `json:"jobUrl"`
	Salary          string    `json:"salary"`
	JobType         string    `json:"jobType"`
	PostedAt        time.Time `json:"date"`
}

type SearchResult struct {
	Success       bool      `json:"success"`
	Jobs          []JobView `json:"jobs"`
	TotalMatching int       `json:"totalResults"`
	Error         string    `json:"error,omitempty"`
}
