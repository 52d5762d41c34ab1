package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func Test_FormatSalary_ShouldFormatAllCombinations(t *testing.T) {

	assert.Equal(t, "Salary not specified", FormatSalary(nil, nil))
	assert.Equal(t, "£60,000 - £80,000", FormatSalary(intPtr(60000), intPtr(80000)))
	assert.Equal(t, "From £50,000", FormatSalary(intPtr(50000), nil))
	assert.Equal(t, "Up to £55,000", FormatSalary(nil, intPtr(55000)))
}

func Test_FormatSalary_ShouldGroupThousands(t *testing.T) {

	assert.Equal(t, "From £900", FormatSalary(intPtr(900), nil))
	assert.Equal(t, "From £1,000", FormatSalary(intPtr(1000), nil))
	assert.Equal(t, "From £1,234,567", FormatSalary(intPtr(1234567), nil))
}

func Test_FormatJobType_ShouldJoinFlagsInFixedOrder(t *testing.T) {

	assert.Equal(t, "Full-time, Permanent", FormatJobType(EmploymentTypes{FullTime: true, Permanent: true}))
	assert.Equal(t, "Part-time, Contract, Temporary",
		FormatJobType(EmploymentTypes{PartTime: true, Contract: true, Temporary: true}))
	assert.Equal(t, "Not specified", FormatJobType(EmploymentTypes{}))
}

func Test_JobPosting_Location_ShouldComposeCityAndCountry(t *testing.T) {

	posting := JobPosting{City: "London", Country: "UK"}
	assert.Equal(t, "London, UK", posting.Location())
}
