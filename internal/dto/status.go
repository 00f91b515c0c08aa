package dto

type StatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

type StatusResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}
