package handler

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Access   []string `json:"access"`
	Comment  string   `json:"comment"`
}

// updateUserRequest is a partial patch: absent fields stay untouched, an
// empty password keeps the current hash.
type updateUserRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email" validate:"omitempty,email"`
	Password string   `json:"password"`
	Access   []string `json:"access"`
	Comment  *string  `json:"comment"`
}
