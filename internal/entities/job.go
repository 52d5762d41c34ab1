package entities

import (
	"strconv"
	"strings"
	"time"
)

// JobPosting is a single catalog record. Postings are built once at catalog
// load and never mutated afterwards. Description may contain embedded markup
// from the source feed and must be sanitized before it leaves the process.
type JobPosting struct {
	ID            string
	Title         string
	Employer      string
	City          string
	Country       string
	Description   string
	URL           string
	MinimumSalary *int
	MaximumSalary *int
	PostedAt      time.Time
	Types         EmploymentTypes
}

func (j JobPosting) Location() string {
	return j.City + ", " + j.Country
}

// EmploymentTypes are independent, non-exclusive flags.
type EmploymentTypes struct {
	FullTime  bool
	PartTime  bool
	Permanent bool
	Contract  bool
	Temporary bool
}

const currencySymbol = "£"

func FormatSalary(min, max *int) string {
	switch {
	case min == nil && max == nil:
		return "Salary not specified"
	case min != nil && max != nil:
		return currencySymbol + formatAmount(*min) + " - " + currencySymbol + formatAmount(*max)
	case min != nil:
		return "From " + currencySymbol + formatAmount(*min)
	default:
		return "Up to " + currencySymbol + formatAmount(*max)
	}
}

func FormatJobType(types EmploymentTypes) string {
	var parts []string
	if types.FullTime {
		parts = append(parts, "Full-time")
	}
	if types.PartTime {
		parts = append(parts, "Part-time")
	}
	if types.Permanent {
		parts = append(parts, "Permanent")
	}
	if types.Contract {
		parts = append(parts, "Contract")
	}
	if types.Temporary {
		parts = append(parts, "Temporary")
	}
	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, ", ")
}

func formatAmount(amount int) string {
	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
