package responses

import "time"

type Admin struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type Me struct {
	OK    bool  `json:"ok"`
	Admin Admin `json:"admin"`
}

// LoginResult is handed from the usecase to the controller, which turns it
// into the session cookie; it is never serialized as is.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     Admin
}
