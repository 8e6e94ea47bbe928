package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int    `json:"length"`
	Uppercase *bool  `json:"uppercase"`
	Lowercase *bool  `json:"lowercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
	Strength  string `json:"strength"`
}

// GenerateResponse represents a password generation response. Warning is set
// only when the attempt budget was exhausted and the password is a fallback
// draw that may not satisfy the requested strength level.
type GenerateResponse struct {
	Password string `json:"password"`
	Warning  string `json:"warning,omitempty"`
}

// CheckRequest asks whether an existing password is acceptable at a level.
type CheckRequest struct {
	Password string `json:"password"`
	Strength string `json:"strength"`
}

// CheckResponse reports the checker verdict for a supplied password.
type CheckResponse struct {
	Acceptable bool `json:"acceptable"`
	Diversity  int  `json:"diversity"`
}
