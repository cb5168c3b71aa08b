package models

// Notice severities.
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Notice is a transient message meant for a toast.
type Notice struct {
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}
