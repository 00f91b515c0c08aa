package dto

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
