package models

// MessageResponse is the body for plain-message replies and all errors.
type MessageResponse struct {
	Message string `json:"message"`
}

func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
