package model

// Profile is the recruiter profile shown in the header. It is explicit
// request context (resolved per request from the X-User-Id header) rather
// than ambient global state.
type Profile struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Company    string `json:"company"`
	Bio        string `json:"bio"`
}

// DefaultProfile mirrors the sample recruiter the UI boots with.
func DefaultProfile() Profile {
	return Profile{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@example.com",
		Phone:      "+1 (555) 123-4567",
		Role:       "HR Manager",
		Department: "Human Resources",
		Company:    "TalentFlow Inc.",
		Bio:        "Experienced HR professional with a passion for talent acquisition and development.",
	}
}
