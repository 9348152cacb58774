package model

// Internship is the Internships document, keyed by id.
type Internship struct {
	ID           string   `json:"id"`
	CompanyEmail string   `json:"companyEmail"`
	CompanyName  string   `json:"companyName"`
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Paid         bool     `json:"paid"`
	Salary       string   `json:"salary,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Description  string   `json:"description"`
	Industry     string   `json:"industry"`
	PostedAt     string   `json:"postedAt"`
}
