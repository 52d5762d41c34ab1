package catalog

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/Jeff9497/Job8earch/internal/logger"
	"github.com/Jeff9497/Job8earch/internal/metrics"
	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	summaryLength   = 200
)

// Source supplies the raw posting list. The mock source never fails; a real
// job-board integration plugs in behind the same contract.
type Source interface {
	List(ctx context.Context) ([]entities.JobPosting, error)
}

type Catalog struct {
	source Source
	markup *bluemonday.Policy
	text   *bluemonday.Policy
}

func New(source Source) *Catalog {
	return &Catalog{
		source: source,
		markup: bluemonday.UGCPolicy(),
		text:   bluemonday.StrictPolicy(),
	}
}

// Search filters the catalog and paginates the filtered set. A posting
// matches when the keyword occurs (case-insensitive) in title, description
// or employer name, and the location term occurs in "city, country". Both
// filters must pass. TotalMatching counts the filtered set before
// pagination.
func (c *Catalog) Search(ctx context.Context, query entities.SearchQuery) entities.SearchResult {

	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
		metrics.SearchesCounter.Inc()
	}()

	postings, err := c.source.List(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeCatalog).Errorf("failed to fetch jobs: %v", err)
		return entities.SearchResult{
			Jobs:  []entities.JobView{},
			Error: "Failed to fetch jobs. Please try again.",
		}
	}

	var filtered []entities.JobPosting
	for _, posting := range postings {
		if c.matches(posting, query) {
			filtered = append(filtered, posting)
		}
	}

	take := query.Take
	if take <= 0 {
		take = defaultPageSize
	}
	skip := query.Skip
	if skip < 0 {
		skip = 0
	}

	page := []entities.JobView{}
	for i := skip; i < len(filtered) && i < skip+take; i++ {
		page = append(page, c.project(filtered[i]))
	}

	return entities.SearchResult{
		Success:       true,
		Jobs:          page,
		TotalMatching: len(filtered),
	}
}

// Get looks a posting up by id and returns its display projection.
func (c *Catalog) Get(ctx context.Context, id string) (*entities.JobView, bool) {
	postings, err := c.source.List(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeCatalog).Errorf("failed to fetch job %v: %v", id, err)
		return nil, false
	}
	for _, posting := range postings {
		if posting.ID == id {
			view := c.project(posting)
			return &view, true
		}
	}
	return nil, false
}

// Posting returns the raw catalog record, used to build analysis prompts.
func (c *Catalog) Posting(ctx context.Context, id string) (*entities.JobPosting, bool) {
	postings, err := c.source.List(ctx)
	if err != nil {
		return nil, false
	}
	for _, posting := range postings {
		if posting.ID == id {
			return &posting, true
		}
	}
	return nil, false
}

func (c *Catalog) matches(posting entities.JobPosting, query entities.SearchQuery) bool {

	if keywords := strings.ToLower(strings.TrimSpace(query.Keywords)); keywords != "" {
		if !strings.Contains(strings.ToLower(posting.Title), keywords) &&
			!strings.Contains(strings.ToLower(posting.Description), keywords) &&
			!strings.Contains(strings.ToLower(posting.Employer), keywords) {
			return false
		}
	}

	if location := strings.ToLower(strings.TrimSpace(query.Location)); location != "" {
		if !strings.Contains(strings.ToLower(posting.Location()), location) {
			return false
		}
	}

	return true
}

func (c *Catalog) project(posting entities.JobPosting) entities.JobView {
	return entities.JobView{
		ID:              posting.ID,
		Title:           posting.Title,
		Employer:        posting.Employer,
		Location:        posting.Location(),
		DescriptionHTML: c.markup.Sanitize(posting.Description),
		Summary:         summarize(html.UnescapeString(c.text.Sanitize(posting.Description))),
		URL:             posting.URL,
		Salary:          entities.FormatSalary(posting.MinimumSalary, posting.MaximumSalary),
		JobType:         entities.FormatJobType(posting.Types),
		PostedAt:        posting.PostedAt,
	}
}

func summarize(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= summaryLength {
		return string(runes)
	}
	return string(runes[:summaryLength]) + "..."
}
