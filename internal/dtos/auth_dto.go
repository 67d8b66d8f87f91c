package dtos

// LoginRequest is the JSON body the login endpoint expects.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	JWTToken string `json:"jwt_token"`
}

// ErrorResponse is what the API sends back on any non-OK status.
type ErrorResponse struct {
	StatusCode int    `json:"status_code,omitempty"`
	ErrorMsg   string `json:"error_msg"`
}

// LoginForm binds the login page form. Fields are not required here:
// an empty username still goes to the API so the user sees its message.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}
