package field

type FieldInput struct {
	Handle   string   `json:"handle" binding:"required,max=64"`
	Name     string   `json:"name" binding:"required,max=255"`
	Type     string   `json:"type" binding:"required"`
	Required bool     `json:"required"`
	Settings Settings `json:"settings"`
}
