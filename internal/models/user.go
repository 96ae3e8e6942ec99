package models

import "time"

// UserStatus defines where a user sits in the access approval lifecycle.
type UserStatus string

const (
	// StatusNew is the initial status for every freshly resolved Telegram identity.
	StatusNew UserStatus = "NEW"

	// StatusRequested means the user has an open join request awaiting an admin.
	StatusRequested UserStatus = "REQUESTED"

	// StatusApproved grants access to gameplay endpoints.
	StatusApproved UserStatus = "APPROVED"

	// StatusRejected means the latest request was declined. Rejected users may apply again.
	StatusRejected UserStatus = "REJECTED"
)

// CanRequestAccess reports whether a user in this status may open a new join request.
// Approved users intentionally have no path back to REQUESTED, while rejected users
// are allowed to re-apply. This asymmetry is a product decision, not an oversight.
func (s UserStatus) CanRequestAccess() bool {
	switch s {
	case StatusNew, StatusRejected:
		return true
	case StatusRequested, StatusApproved:
		return false
	}
	return false
}

// User represents a Telegram account known to the backend.
type User struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	TelegramID int64      `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username   string     `gorm:"size:255" json:"username,omitempty"`
	FirstName  string     `gorm:"size:255;not null" json:"first_name"`
	LastName   string     `gorm:"size:255" json:"last_name,omitempty"`
	PhotoURL   string     `gorm:"size:1024" json:"photo_url,omitempty"`
	Status     UserStatus `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	JoinRequests []JoinRequest `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Scores       []Score       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
