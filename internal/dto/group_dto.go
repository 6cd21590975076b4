package dto

type GenerateGroupsRequest struct {
	GroupCount int `json:"group_count" binding:"required,min=1"`
}

type AssignGroupRequest struct {
	ParticipantID uint  `json:"participant_id" binding:"required"`
	GroupID       *uint `json:"group_id"` // null = kembalikan ke pool tanpa kelompok
}
