package models

// Action is a civic task proposed by a user.
type Action struct {
	ID                   int64      `json:"action_id" gorm:"column:action_id;primaryKey;autoIncrement:false"`
	ProposerID           int64      `json:"proposer_id" gorm:"index"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Type                 string     `json:"type"`
	Impact               string     `json:"impact"`
	ImageURL             *string    `json:"image_url"`
	Likes                int        `json:"likes"`
	RequiredParticipants int        `json:"required_participants"`
	Deadline             *Timestamp `json:"deadline"`
	Seq                  int64      `json:"-" gorm:"index"`
}

// Normalize applies the defaults a freshly proposed action gets.
func (a *Action) Normalize() {
	if a.RequiredParticipants == 0 {
		a.RequiredParticipants = 1
	}
}

// Clone returns a copy that shares no pointers with a.
func (a Action) Clone() Action {
	out := a
	if a.ImageURL != nil {
		image := *a.ImageURL
		out.ImageURL = &image
	}
	if a.Deadline != nil {
		deadline := *a.Deadline
		out.Deadline = &deadline
	}
	return out
}

// ActionView is an action enriched with its proposer's username for listing.
type ActionView struct {
	Action
	ProposerUsername string `json:"proposer_username"`
}

// UnknownProposer is reported when an action's proposer no longer resolves.
const UnknownProposer = "Unknown"
