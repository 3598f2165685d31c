package request

type PixCopyRequest struct {
	Code string `json:"code" binding:"required"`
}
