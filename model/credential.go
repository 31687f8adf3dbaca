package model

// CredentialRequest is the email/password input of the login and signup forms.
// ConfirmPassword is only checked in signup mode.
type CredentialRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

type CredentialResponse struct {
	Email        string       `json:"email"`
	Token        string       `json:"token"`
	Notification Notification `json:"notification"`
}
