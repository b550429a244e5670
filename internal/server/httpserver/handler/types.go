// Package handler provides HTTP request handlers for DocFold.
package handler

// credentialsRequest is the request body for POST /auth and POST /signup.
type credentialsRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// authResponse is the response body for the login endpoints.
// Token is a pointer so failures serialize auth_token as null.
type authResponse struct {
	Auth    bool    `json:"auth"`
	Message string  `json:"message"`
	Token   *string `json:"auth_token"`
}

// changePasswordRequest is the request body for POST /change-password.
type changePasswordRequest struct {
	OriginalPassword string `json:"originalPassword"`
	NewPassword      string `json:"newPassword"`
}

// changePasswordResponse is the response body for POST /change-password.
type changePasswordResponse struct {
	Auth    bool   `json:"auth"`
	Message string `json:"message"`
}
