package model

// Role identifies what a user is allowed to do in the application.
// The values are stored verbatim in the persisted user records, so
// they must not change without migrating existing data (there is no
// migration path; a changed value would simply stop matching).
type Role string

// All roles known to the application. ADMIN and AGENT manage listings
// on behalf of others, OWNER manages their own, TENANT browses and books.
const (
	RoleAdmin  Role = "ADMIN"
	RoleAgent  Role = "AGENT"
	RoleOwner  Role = "OWNER"
	RoleTenant Role = "TENANT"
)

// User represents a seeded application user. Users are immutable once
// seeded: there is no registration, update or delete operation. Login
// selects a user by case-insensitive email match.
//
// Fields:
//  ID        – record identifier (e.g. "u_agent").
//  Email     – unique login email.
//  FirstName – given name, display only.
//  LastName  – family name, display only.
//  Role      – one of the Role constants above.
//  AvatarURL – optional avatar image reference.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
