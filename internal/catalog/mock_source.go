package catalog

import (
	"context"
	"time"

	"github.com/Jeff9497/Job8earch/internal/entities"
)

// Categories is the fixed, order-stable list of search suggestions.
var Categories = []string{
	"Software Developer",
	"Data Scientist",
	"Product Manager",
	"UX Designer",
	"Marketing Manager",
	"Sales Executive",
	"Business Analyst",
	"Project Manager",
	"DevOps Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Mobile Developer",
	"QA Engineer",
	"Cybersecurity Specialist",
}

// Locations is the fixed, order-stable list of canonical locations.
var Locations = []string{
	"London",
	"Manchester",
	"Birmingham",
	"Leeds",
	"Glasgow",
	"Bristol",
	"Edinburgh",
	"Liverpool",
	"Newcastle",
	"Sheffield",
	"Remote",
	"Hybrid",
}

// MockSource is the hand-authored posting list standing in for a real
// job-board integration.
type MockSource struct {
	postings []entities.JobPosting
}

func NewMockSource() *MockSource {
	now := time.Now().UTC()
	fullTimePermanent := entities.EmploymentTypes{FullTime: true, Permanent: true}

	return &MockSource{postings: []entities.JobPosting{
		{
			ID:       "1",
			Title:    "Senior Software Developer",
			Employer: "TechCorp Ltd",
			City:     "London",
			Country:  "UK",
			Description: "We are looking for a Senior Software Developer to join our dynamic team. " +
				"You will be responsible for developing high-quality software solutions using modern technologies.",
			URL:           "#",
			MinimumSalary: salary(60000),
			MaximumSalary: salary(80000),
			PostedAt:      now,
			Types:         fullTimePermanent,
		},
		{
			ID:       "2",
			Title:    "Product Manager",
			Employer: "Innovation Inc",
			City:     "Manchester",
			Country:  "UK",
			Description: "Join our product team as a Product Manager. You will drive product strategy, " +
				"work with cross-functional teams, and deliver exceptional user experiences.",
			URL:           "#",
			MinimumSalary: salary(50000),
			MaximumSalary: salary(70000),
			PostedAt:      now,
			Types:         fullTimePermanent,
		},
		{
			ID:       "3",
			Title:    "UX Designer",
			Employer: "Design Studio",
			City:     "Birmingham",
			Country:  "UK",
			Description: "We are seeking a talented UX Designer to create intuitive and engaging user " +
				"experiences. You will work closely with product and engineering teams.",
			URL:           "#",
			MinimumSalary: salary(40000),
			MaximumSalary: salary(55000),
			PostedAt:      now,
			Types:         fullTimePermanent,
		},
		{
			ID:       "4",
			Title:    "Data Scientist",
			Employer: "Analytics Pro",
			City:     "Edinburgh",
			Country:  "UK",
			Description: "Looking for a Data Scientist to analyze complex datasets and provide actionable " +
				"insights. Experience with Python, R, and machine learning required.",
			URL:           "#",
			MinimumSalary: salary(55000),
			MaximumSalary: salary(75000),
			PostedAt:      now,
			Types:         fullTimePermanent,
		},
		{
			ID:       "5",
			Title:    "Marketing Manager",
			Employer: "Growth Agency",
			City:     "Bristol",
			Country:  "UK",
			Description: "Join our marketing team as a Marketing Manager. You will develop and execute " +
				"marketing strategies to drive brand awareness and customer acquisition.",
			URL:           "#",
			MinimumSalary: salary(45000),
			MaximumSalary: salary(60000),
			PostedAt:      now,
			Types:         fullTimePermanent,
		},
	}}
}

func (s *MockSource) List(_ context.Context) ([]entities.JobPosting, error) {
	return s.postings, nil
}

func salary(amount int) *int {
	return &amount
}
