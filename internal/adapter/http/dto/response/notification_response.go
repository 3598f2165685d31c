package response

import "novo_seguros/internal/domain/entities"

type NotificationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	if len(notifications) == 0 {
		return nil
	}
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			Title:       n.Title,
			Description: n.Description,
			Severity:    string(n.Severity),
		})
	}
	return out
}
