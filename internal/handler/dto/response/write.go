package response

import "github.com/google/uuid"

type CreatedResponse struct {
	ID string `json:"id"`
}

func NewCreatedResponse(id uuid.UUID) CreatedResponse {
	return CreatedResponse{ID: id.String()}
}
