package handler

// registerRequest is the POST /users payload. Validation tags are evaluated
// in order and stop at the first failing rule per field.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=4,max=32"`
	Email    string `json:"email"    validate:"required,account_email"`
	Password string `json:"password" validate:"required,min=6,account_password"`
}

// FieldErrors holds one message per failing field. Struct encoding keeps the
// JSON keys in field declaration order: username, email, password.
type FieldErrors struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

func (fe *FieldErrors) empty() bool {
	return fe.Username == "" && fe.Email == "" && fe.Password == ""
}

type validationErrorResponse struct {
	ValidationErrors *FieldErrors `json:"validationErrors"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// userResponse exposes exactly id, username, and email — never the password
// hash, activation token, or inactive flag.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type listUsersResponse struct {
	Content    []userResponse `json:"content"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"totalPages"`
}
