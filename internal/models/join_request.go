package models

import "time"

// JoinRequestStatus defines the state of a single access petition.
type JoinRequestStatus string

const (
	// RequestPending means the request is awaiting an admin decision.
	RequestPending JoinRequestStatus = "PENDING"

	// RequestApproved and RequestRejected are terminal: a request is decided
	// exactly once and never revisited.
	RequestApproved JoinRequestStatus = "APPROVED"
	RequestRejected JoinRequestStatus = "REJECTED"
)

// Decided reports whether the request has reached a terminal status.
func (s JoinRequestStatus) Decided() bool {
	return s != RequestPending
}

// JoinRequest represents one access petition by a user. At most one request per
// user may be PENDING at any time; once decided, a request is immutable.
type JoinRequest struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	UserID            uint              `gorm:"not null;index" json:"user_id"`
	Status            JoinRequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Comment           string            `gorm:"size:1024" json:"comment,omitempty"`
	DecisionReason    string            `gorm:"size:1024" json:"decision_reason,omitempty"`
	DecidedByAdminTgID int64            `json:"decided_by_admin_tg_id,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	DecidedAt         *time.Time        `json:"decided_at,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
