package constant

type contextKey string

// SessionIDKey holds the reveal-token session id in a request context.
const SessionIDKey contextKey = "session_id"

// AuthMode selects which flow the credential form submits.
type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

// Toggle returns the other mode.
func (m AuthMode) Toggle() AuthMode {
	if m == AuthModeLogin {
		return AuthModeSignup
	}
	return AuthModeLogin
}

// Variant is the severity of a transient notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Credential form field names, as they appear on the wire and in error sets.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// LandingPath is where the personal-info form sends the user after saving or going back.
const LandingPath = "/"
