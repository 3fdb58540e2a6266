package export

type SaveExportDTO struct {
	FormID         uint     `json:"form_id" binding:"required"`
	Name           string   `json:"name" binding:"required,max=255"`
	Format         string   `json:"format" binding:"omitempty,oneof=csv xlsx"`
	SubmissionIDs  []uint   `json:"submission_ids"`
	Criteria       Criteria `json:"criteria"`
	Mapping        Mapping  `json:"mapping"`
	StartRightAway bool     `json:"start_right_away"`
}

type CountDTO struct {
	FormID   uint     `json:"form_id" binding:"required"`
	Criteria Criteria `json:"criteria"`
}

type CountResult struct {
	Total int64 `json:"total"`
}
