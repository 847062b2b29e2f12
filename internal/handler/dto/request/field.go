package request

type CreateFieldRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateFieldRequest struct {
	Name string `json:"name" binding:"required"`
}
