package group

type GroupInput struct {
	Name string `json:"name" binding:"required,max=255"`
}
