package attendance

import (
	"time"

	"github.com/abdelrhmanQ/shc2/core"
)

// StatusPresent is the only status a redeemed code produces.
const StatusPresent = "present"

// Session is an issued attendance window. Ending a session only clears the
// issuing controller's local slot; the persisted record keeps Active=true
// (known gap, kept deliberately).
type Session struct {
	SessionID string    `json:"session_id" bson:"session_id"`
	CourseID  string    `json:"course_id" bson:"course_id"`
	CreatedBy string    `json:"created_by" bson:"created_by"`
	StartTime time.Time `json:"start_time" bson:"start_time"` // store-assigned
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	Active    bool      `json:"active" bson:"active"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Record is a student's self-reported presence.
type Record struct {
	SessionID    string    `json:"session_id" bson:"session_id"`
	CourseID     string    `json:"course_id" bson:"course_id"`
	StudentID    string    `json:"student_id" bson:"student_id"`
	StudentEmail string    `json:"student_email" bson:"student_email"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"` // store-assigned
	Status       string    `json:"status" bson:"status"`
}

// NewSession contains the fields required to issue a session.
type NewSession struct {
	CourseID        string `json:"course_id" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

func (ns *NewSession) Validate() error {
	ns.CourseID = core.CleanString(ns.CourseID)
	return core.Validate.Struct(ns)
}
