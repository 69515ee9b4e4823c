package request

type CreateLanguageRequest struct {
	Code string `json:"code" binding:"required,min=2,max=16"`
	Name string `json:"name" binding:"required,max=64"`
}
