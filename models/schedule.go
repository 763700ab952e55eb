package models

// Schedule is a single reminder definition. All ids and timestamps are
// client-assigned strings; the server only stamps created_at/updated_at.
// CompletedDates is an opaque serialized list the server never decomposes.
type Schedule struct {
	ID               string `json:"id" bson:"id" binding:"required"`
	UserID           string `json:"user_id" bson:"user_id" binding:"required"`
	Title            string `json:"title" bson:"title" binding:"required"`
	Description      string `json:"description" bson:"description"`
	ScheduledTime    string `json:"scheduled_time" bson:"scheduled_time" binding:"required"`
	Frequency        string `json:"frequency" bson:"frequency" binding:"required"`
	NotificationTone string `json:"notification_tone" bson:"notification_tone"`
	IsActive         bool   `json:"is_active" bson:"is_active"`
	CreatedAt        string `json:"created_at" bson:"created_at"`
	UpdatedAt        string `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	EndDate          string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	CompletedDates   string `json:"completed_dates" bson:"completed_dates"`
	IsCompleted      bool   `json:"is_completed" bson:"is_completed"`
}

// Validate reports whether a stored document still has the fields the client
// cannot live without. Used on the read path to drop corrupt records instead
// of failing a whole listing.
func (s Schedule) Validate() error {
	switch {
	case s.ID == "":
		return ErrMissingField("id")
	case s.UserID == "":
		return ErrMissingField("user_id")
	case s.Title == "":
		return ErrMissingField("title")
	case s.ScheduledTime == "":
		return ErrMissingField("scheduled_time")
	case s.Frequency == "":
		return ErrMissingField("frequency")
	case s.CreatedAt == "":
		return ErrMissingField("created_at")
	}
	return nil
}

// ErrMissingField names the first required field absent from a document.
type ErrMissingField string

func (e ErrMissingField) Error() string {
	return "schedule document missing required field " + string(e)
}
