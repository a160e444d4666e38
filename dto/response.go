package dto

type ErrorResponseDTO struct {
	Error string `json:"error"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
