package handler

// Field constraints mirror the stored record: userid 4-10, username 2-10.

type registerRequest struct {
	UserID   string `json:"userid"   validate:"required,min=4,max=10"`
	Username string `json:"username" validate:"required,min=2,max=10"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=3"`
}

type loginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// resultResponse is the success envelope for endpoints with no data payload.
type resultResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func resultOK() resultResponse {
	return resultResponse{Status: 200, Message: "Success"}
}
