package dto

type ProfileResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	FullName  string `json:"fullName"`
	Email     string `json:"email,omitempty"`
	StudentID string `json:"studentId,omitempty"`
	Course    string `json:"course,omitempty"`
	YearLevel string `json:"yearLevel,omitempty"`
}

// UpdateProfileRequest carries partial profile edits; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	FullName  *string `json:"fullName"`
	Email     *string `json:"email"`
	StudentID *string `json:"studentId"`
	Course    *string `json:"course"`
	YearLevel *string `json:"yearLevel"`
}

type StatsResponse struct {
	KBCount      int `json:"kbCount"`
	RuleCount    int `json:"ruleCount"`
	SessionCount int `json:"sessionCount"`
	MessageCount int `json:"messageCount"`
	UserCount    int `json:"userCount"`
}
