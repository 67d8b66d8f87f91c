package models

// Job is one listing as the views see it. Built from the API payload and never mutated.
type Job struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	CompanyLogoURL  string  `json:"companyLogoUrl"`
	EmploymentType  string  `json:"employmentType"`
	Location        string  `json:"location"`
	JobDescription  string  `json:"jobDescription"`
	PackagePerAnnum string  `json:"packagePerAnnum"`
	Rating          float64 `json:"rating"`
}

type EmploymentType struct {
	ID    string `json:"employmentTypeId"`
	Label string `json:"label"`
}

type SalaryRange struct {
	ID    int    `json:"salaryRangeId"`
	Label string `json:"label"`
}

const (
	EmploymentFullTime   = "FULLTIME"
	EmploymentPartTime   = "PARTTIME"
	EmploymentFreelance  = "FREELANCE"
	EmploymentInternship = "INTERNSHIP"
)

// NoMinimumPackage is the salary threshold used until the user picks one.
const NoMinimumPackage = 0

var EmploymentTypes = []EmploymentType{
	{ID: EmploymentFullTime, Label: "Full Time"},
	{ID: EmploymentPartTime, Label: "Part Time"},
	{ID: EmploymentFreelance, Label: "Freelance"},
	{ID: EmploymentInternship, Label: "Internship"},
}

var SalaryRanges = []SalaryRange{
	{ID: 1000000, Label: "10 LPA and above"},
	{ID: 2000000, Label: "20 LPA and above"},
	{ID: 3000000, Label: "30 LPA and above"},
	{ID: 4000000, Label: "40 LPA and above"},
}

func IsEmploymentType(tag string) bool {
	for _, t := range EmploymentTypes {
		if t.ID == tag {
			return true
		}
	}
	return false
}

func IsSalaryRange(v int) bool {
	if v == NoMinimumPackage {
		return true
	}
	for _, r := range SalaryRanges {
		if r.ID == v {
			return true
		}
	}
	return false
}
