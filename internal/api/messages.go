package api

// User-facing outcome messages.
const (
	MsgAccountCreated   = "Account was created successfully, check your email to confirm it"
	MsgAccountConfirmed = "Account was confirmed successfully"
	MsgLoggedIn         = "Login successful"
	MsgCodeSent         = "A new code was sent to your e-mail"
	MsgResetSent        = "Check your email to see the instructions"
	MsgTokenValid       = "Valid token. Create a new password"
	MsgPasswordUpdated  = "Password was updated successfully"
	MsgPong             = "pong"
)

type CreateAccountRequest struct {
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type ConfirmAccountRequest struct {
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RequestCodeRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type UpdatePasswordRequest struct {
	Token                string `json:"token"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type PingRequest struct{}

// MessageResponse carries the user-facing outcome of an operation.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse describes the authenticated account. No session is issued.
type LoginResponse struct {
	Message   string `json:"message"`
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}
