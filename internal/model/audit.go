package model

import "time"

// AuditRecord is one append-only changelog event. Records are never edited
// or removed once written.
type AuditRecord struct {
	Date        time.Time `json:"date"`
	Action      Action    `json:"action"`
	Description string    `json:"description"`
	Contributor string    `json:"contributor"`
}

// Action is the fixed vocabulary of changelog events
type Action string

const (
	ActionCreated     Action = "Created"
	ActionUpdated     Action = "Updated"
	ActionDeprecated  Action = "Deprecated"
	ActionEstablished Action = "Established"
	ActionResolved    Action = "Resolved"
)

// AuditActionForStatus maps a status change to its changelog action:
// moving to deprecated or established gets the dedicated action, leaving
// contradicted counts as resolving the contradiction, everything else is a
// plain update.
func AuditActionForStatus(from, to Status) Action {
	switch {
	case to == StatusDeprecated:
		return ActionDeprecated
	case to == StatusEstablished:
		return ActionEstablished
	case from == StatusContradicted:
		return ActionResolved
	default:
		return ActionUpdated
	}
}
