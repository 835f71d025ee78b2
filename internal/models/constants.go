package models

// ============================================================================
// ROLE CONSTANTS
// ============================================================================

// Role is the marketplace role of a user account
type Role string

const (
	RoleFreelancer Role = "freelancer"
	RoleRecruiter  Role = "recruiter"
	RoleAdmin      Role = "admin"
	RoleValidator  Role = "validator"
)

// Roles lists every role in the order the console presents them
var Roles = []Role{RoleFreelancer, RoleRecruiter, RoleAdmin, RoleValidator}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ============================================================================
// PROJECT STATUS CONSTANTS
// ============================================================================

// ProjectStatus is the lifecycle state of a project.
// The backend reports listing statuses (open, pending, closed) while the
// status-update endpoint accepts edit statuses (pending, active, finished).
// The two vocabularies are kept apart until the product decides how they map.
type ProjectStatus string

// Listing vocabulary, as returned by the list endpoints
const (
	StatusOpen    ProjectStatus = "open"
	StatusPending ProjectStatus = "pending"
	StatusClosed  ProjectStatus = "closed"
)

// Edit vocabulary, as accepted by the status-update endpoint
const (
	StatusActive   ProjectStatus = "active"
	StatusFinished ProjectStatus = "finished"
)

// EditableStatuses lists the statuses the status-update endpoint accepts
var EditableStatuses = []ProjectStatus{StatusPending, StatusActive, StatusFinished}

// Editable reports whether s belongs to the edit vocabulary
func (s ProjectStatus) Editable() bool {
	for _, known := range EditableStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Description returns the help text shown next to an edit status
func (s ProjectStatus) Description() string {
	switch s {
	case StatusActive:
		return "Project is active and visible to users"
	case StatusFinished:
		return "Project is completed and archived"
	default:
		return "Project is pending approval or review"
	}
}

// ============================================================================
// REQUEST STATUS CONSTANTS
// ============================================================================

// RequestStatus is the state of a freelancer's application to a project
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// ============================================================================
// USER FIELD CONSTANTS
// ============================================================================

// UserField names a contact field that can be edited in place
type UserField string

const (
	FieldEmail UserField = "email"
	FieldPhone UserField = "phone"
	FieldLink  UserField = "link"
)

// EditableUserFields lists the fields the edit-field operation accepts
var EditableUserFields = []UserField{FieldEmail, FieldPhone, FieldLink}

// Label returns the display label for the field
func (f UserField) Label() string {
	switch f {
	case FieldPhone:
		return "Phone"
	case FieldLink:
		return "Portfolio Link"
	default:
		return "Email"
	}
}
