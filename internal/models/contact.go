package models

import "time"

// Contact submission statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusCompleted = "completed"
)

// ContactSubmission represents a message sent through the public contact
// form. Status and notes are admin-managed.
type ContactSubmission struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            string    `db:"email" json:"email"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Company          *string   `db:"company" json:"company,omitempty"`
	ConsultationType *string   `db:"consultation_type" json:"consultationType,omitempty"`
	Message          string    `db:"message" json:"message"`
	Status           string    `db:"status" json:"status"`
	SubmittedAt      time.Time `db:"submitted_at" json:"submittedAt"`
	Notes            *string   `db:"notes" json:"notes,omitempty"`
}

// ContactInput is the public submission payload.
type ContactInput struct {
	Name             string  `json:"name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            *string `json:"phone"`
	Company          *string `json:"company"`
	ConsultationType *string `json:"consultationType"`
	Message          string  `json:"message" binding:"required"`
}

// ContactStatusUpdate is the admin payload for moving a submission through
// the pipeline.
type ContactStatusUpdate struct {
	Status string  `json:"status" binding:"required,oneof=new contacted completed"`
	Notes  *string `json:"notes"`
}
