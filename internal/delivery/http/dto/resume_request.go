package dto

// SubmitResumeRequest is the application form body. Field names match
// what the portal posts.
type SubmitResumeRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Gender     string   `json:"gender"`
	Address    string   `json:"address"`
	LinkedIn   string   `json:"linkedin"`
	Marks12    string   `json:"marks12"`
	Pass12     string   `json:"pass12"`
	GradMarks  string   `json:"grad_marks"`
	GradYear   string   `json:"grad_year"`
	Department string   `json:"department"`
	Experience string   `json:"experience"`
	WorkPref   string   `json:"work_pref"`
	Skills     []string `json:"skills"`
	JobID      string   `json:"jobId"`
	JobTitle   string   `json:"jobTitle"`
	Filename   string   `json:"filename"`
}
