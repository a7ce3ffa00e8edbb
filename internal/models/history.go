package models

import "time"

// UnknownActionTitle is recorded when a validated participation points at an
// action that no longer exists.
const UnknownActionTitle = "Unknown Action"

// HistoryEntry snapshots a validated participation. The action fields are nil
// when the action could not be resolved at validation time; the user fields
// hold the values before the award.
type HistoryEntry struct {
	ActionID                   int64      `json:"action_id"`
	ActionTitle                string     `json:"action_title"`
	Date                       Timestamp  `json:"date"`
	Participated               int        `json:"a_participe"`
	ActionType                 *string    `json:"action_type"`
	ActionImpact               *string    `json:"action_impact"`
	ActionRequiredParticipants *int       `json:"action_required_participants"`
	ActionDeadline             *Timestamp `json:"action_deadline"`
	UserAge                    int        `json:"user_age_at_participation"`
	UserRole                   string     `json:"user_role_at_participation"`
	UserPoints                 int        `json:"user_points_at_participation"`
}

// Clone returns a copy that shares no pointers with e.
func (e HistoryEntry) Clone() HistoryEntry {
	out := e
	if e.ActionType != nil {
		v := *e.ActionType
		out.ActionType = &v
	}
	if e.ActionImpact != nil {
		v := *e.ActionImpact
		out.ActionImpact = &v
	}
	if e.ActionRequiredParticipants != nil {
		v := *e.ActionRequiredParticipants
		out.ActionRequiredParticipants = &v
	}
	if e.ActionDeadline != nil {
		v := *e.ActionDeadline
		out.ActionDeadline = &v
	}
	return out
}

// NewHistoryEntry builds the snapshot for user validating a code of actionID
// at the given time. action may be nil.
func NewHistoryEntry(actionID int64, action *Action, user User, at time.Time) HistoryEntry {
	entry := HistoryEntry{
		ActionID:     actionID,
		ActionTitle:  UnknownActionTitle,
		Date:         NewTimestamp(at),
		Participated: 1,
		UserAge:      user.Age,
		UserRole:     user.Role,
		UserPoints:   user.Points,
	}
	if action != nil {
		actionType, impact, required := action.Type, action.Impact, action.RequiredParticipants
		entry.ActionTitle = action.Title
		entry.ActionType = &actionType
		entry.ActionImpact = &impact
		entry.ActionRequiredParticipants = &required
		if action.Deadline != nil {
			deadline := *action.Deadline
			entry.ActionDeadline = &deadline
		}
	}
	return entry
}
