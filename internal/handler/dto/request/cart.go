package request

type UpdateParticipantsRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Delta int    `json:"delta" binding:"required"`
}

type PromoPreviewRequest struct {
	Code string `json:"code" binding:"required"`
}
