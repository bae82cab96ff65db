package domain

import "time"

// CommandAction names an operator command issued from the dashboard
type CommandAction string

const (
	ActionResolve        CommandAction = "resolve"
	ActionIgnore         CommandAction = "ignore"
	ActionRetry          CommandAction = "retry"
	ActionRetryAll       CommandAction = "retry-all"
	ActionValidate       CommandAction = "validate"
	ActionFixCalendars   CommandAction = "fix-calendars"
	ActionCollectNightly CommandAction = "collect-nightly"
)

// CommandEntry is a journal record of one operator command and its outcome
type CommandEntry struct {
	ID        string        `json:"id"`
	Action    CommandAction `json:"action"`
	TargetID  string        `json:"targetId,omitempty"` // error or listing id, empty for bulk commands
	Note      string        `json:"note,omitempty"`
	Success   bool          `json:"success"`
	Message   string        `json:"message,omitempty"` // backend acknowledgment or failure text
	CreatedAt time.Time     `json:"createdAt"`
}
