package response

import "novo_seguros/internal/usecase"

type PixPayloadResponse struct {
	SlipID       string `json:"slipId"`
	Period       string `json:"period"`
	LicensePlate string `json:"licensePlate"`
	Amount       string `json:"amount"`
	Code         string `json:"code"`
}

func FromPixPayload(p usecase.PixPayload) PixPayloadResponse {
	return PixPayloadResponse{
		SlipID:       p.SlipID,
		Period:       p.Period,
		LicensePlate: p.LicensePlate,
		Amount:       p.Amount,
		Code:         p.Code,
	}
}

type PixCopyResponse struct {
	Copied                 bool                   `json:"copied"`
	CopiedIndicatorSeconds int                    `json:"copiedIndicatorSeconds"`
	Notifications          []NotificationResponse `json:"notifications,omitempty"`
}
