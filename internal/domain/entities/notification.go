package entities

// NotificationSeverity mirrors the toast variants of the dashboard shell.

type NotificationSeverity string

const (
	SeverityInfo        NotificationSeverity = "info"
	SeverityDestructive NotificationSeverity = "destructive"
)

// Notification is an effect description emitted by core operations. The core
// never renders it; the presentation layer (or an API client) does.

type Notification struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Severity    NotificationSeverity `json:"severity"`
}

func InfoNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Severity: SeverityInfo}
}

func DestructiveNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Severity: SeverityDestructive}
}
