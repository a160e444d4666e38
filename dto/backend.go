package dto

type ModelsResponseDTO struct {
	Models []string `json:"models"`
}

type StatusResponseDTO struct {
	Running     bool     `json:"running"`
	Endpoint    string   `json:"endpoint"`
	Protocol    string   `json:"protocol"`
	Models      []string `json:"models"`
	ActiveModel string   `json:"active_model,omitempty"`
}
