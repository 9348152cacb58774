package model

// Experience type constants
var (
	// ExperienceInternship counts toward the pro-status duration total
	ExperienceInternship = "internship"
	// ExperiencePartTime is recorded on the profile but never counted
	ExperiencePartTime = "part-time"
)

// Experience is one past activity embedded in a student profile. Dates are
// calendar-date strings; either may be missing or unparseable, in which case
// the entry contributes nothing to duration totals.
type Experience struct {
	Type             string `json:"type"`
	Company          string `json:"company"`
	Position         string `json:"position"`
	DateFrom         string `json:"dateFrom"`
	DateTo           string `json:"dateTo"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

// StudentProfile is the studentProfiles document, keyed by email.
type StudentProfile struct {
	Email          string          `json:"email"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Major          string          `json:"major"`
	Semester       string          `json:"semester"`
	Interests      []string        `json:"interests,omitempty"`
	Experiences    []Experience    `json:"experiences"`
	ProfilePicture *FileAttachment `json:"profilePicture,omitempty"`
}

// DisplayName joins the name fields for display.
func (p StudentProfile) DisplayName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
