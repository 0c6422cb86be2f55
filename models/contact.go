package models

// ContactMessage is an inbound note from a site visitor. Messages are
// write-only: stored once, never read back through the API.
type ContactMessage struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email" bson:"email" validate:"required,email"`
	Message string `json:"message" bson:"message" validate:"required"`
}

// ContactResult reports the outcome of a contact submission. Stored is true
// whenever the handler returns at all; EmailSent and Error describe the
// best-effort notification independently.
type ContactResult struct {
	Stored    bool    `json:"stored"`
	EmailSent bool    `json:"email_sent"`
	Error     *string `json:"error"`
}
