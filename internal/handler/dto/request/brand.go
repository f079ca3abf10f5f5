package request

type CreateBrandRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Category string `json:"category" binding:"required,max=100"`
}
