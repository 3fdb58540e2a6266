package submission

type SaveSubmissionDTO struct {
	Content map[string]any `json:"content" binding:"required"`
}

type NoteInput struct {
	Name string `json:"name" binding:"required,max=255"`
	Text string `json:"text" binding:"required"`
}
