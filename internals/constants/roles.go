package constants

import "fmt"

// Error message templates used by the route guards.
const (
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

/* ==========================
   UserRole
========================== */

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

var AllRoles = []UserRole{RoleUser, RoleAdmin}

func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

func (r UserRole) String() string { return string(r) }

/* ==========================
   UserStatus
========================== */

type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
	StatusBanned   UserStatus = "BANNED"
)

var AllStatuses = []UserStatus{StatusActive, StatusInactive, StatusBanned}

func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBanned:
		return true
	}
	return false
}

func (s UserStatus) String() string { return string(s) }

/* ==========================
   Provider (social login)
========================== */

type Provider string

const (
	ProviderLocal  Provider = "LOCAL"
	ProviderGoogle Provider = "GOOGLE"
	ProviderGithub Provider = "GITHUB"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle, ProviderGithub:
		return true
	}
	return false
}

func (p Provider) String() string { return string(p) }

/* ==========================
   FeedbackType
========================== */

type FeedbackType string

const (
	FeedbackHelpful          FeedbackType = "HELPFUL"
	FeedbackNeedsImprovement FeedbackType = "NEEDS_IMPROVEMENT"
)

func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackHelpful, FeedbackNeedsImprovement:
		return true
	}
	return false
}

func (t FeedbackType) String() string { return string(t) }
