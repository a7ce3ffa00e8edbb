package models

// Participation is a user's commitment to an action. Its ID doubles as the
// one-shot code the participant redeems for points.
type Participation struct {
	ID       string `json:"participation_id" gorm:"column:participation_id;primaryKey;type:varchar(36)"`
	ActionID int64  `json:"action_id" gorm:"index"`
	UserID   int64  `json:"user_id" gorm:"index"`
	Used     bool   `json:"used"`
	Seq      int64  `json:"-" gorm:"index"`
}
