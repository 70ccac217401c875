package domain

// User roles.
const (
	RoleOwner  = "owner"
	RoleWalker = "walker"
)

// UserProfile is a registered user. Profiles are looked up by email during
// login and by id for the session.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  string `json:"role"` // One of RoleOwner, RoleWalker
}

// Session is the single process-wide authenticated user. There is no
// multi-session support.
type Session struct {
	UserID string
	Role   string
}

// UserRepository is the interface that holds the profile and session
// repository methods.
type UserRepository interface {
	// PerformLogin looks the email up in the registered-user index. On a hit
	// it stores the profile as the current one, establishes the session, and
	// returns the profile. A miss reports false and creates nothing;
	// registration is a separate explicit flow through SaveUserProfile.
	PerformLogin(email string) (UserProfile, bool, error)

	// SaveSession persists the process-wide session scalars.
	SaveSession(userID, role string) error

	// CurrentSession returns the persisted session, reporting false when
	// either scalar is missing.
	CurrentSession() (Session, bool)

	// ClearSession removes the session scalars and the current profile.
	ClearSession() error

	// SaveUserProfile persists the profile as the current one and, when the
	// email is non-empty, upserts it into the registered-user index. This is
	// the only path by which a user becomes discoverable by PerformLogin.
	SaveUserProfile(profile UserProfile) error

	// GetUserProfile returns the current profile, or a fixed demo default
	// when none has been saved. It never fails.
	GetUserProfile() UserProfile

	// AllWalkerProfiles returns every registered profile with the walker role.
	AllWalkerProfiles() []UserProfile
}
