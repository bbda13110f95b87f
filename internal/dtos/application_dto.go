package dtos

// ApplicationRequest is the full payload for both create and update; there are
// no partial-patch semantics. Status and source are free text here and are
// re-normalized server-side regardless of what the client sends.
type ApplicationRequest struct {
	Company   string `json:"company" binding:"required"`
	Position  string `json:"position" binding:"required"`
	AppliedAt string `json:"applied_at" binding:"required"`

	// Optional fields
	Status string `json:"status"`
	Source string `json:"source"`
	Notes  string `json:"notes"`
}

// ListApplicationsQuery carries the optional list filters. Start and End are
// inclusive YYYY-MM-DD bounds on applied_at.
type ListApplicationsQuery struct {
	Status string `form:"status"`
	Start  string `form:"start"`
	End    string `form:"end"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries the authorization code from the OAuth redirect.
type GoogleSignInRequest struct {
	Code string `json:"code" binding:"required"`
}
