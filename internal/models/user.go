package models

// Roles a user can hold.
const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// User represents a registered citizen.
type User struct {
	ID           int64          `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Username     string         `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email        string         `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password     string         `json:"password" gorm:"type:varchar(255)"` // compared verbatim on login
	Role         string         `json:"role" gorm:"type:varchar(20)"`
	Points       int            `json:"points"`
	Historique   []HistoryEntry `json:"historique" gorm:"serializer:json"`
	Age          int            `json:"age"`
	LikedActions []int64        `json:"liked_actions" gorm:"serializer:json"`
	Seq          int64          `json:"-" gorm:"index"` // insertion order for database backends
}

// HasLiked reports whether actionID is already in the user's liked set.
func (u *User) HasLiked(actionID int64) bool {
	for _, id := range u.LikedActions {
		if id == actionID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices or pointers with u.
func (u User) Clone() User {
	out := u
	out.Historique = make([]HistoryEntry, len(u.Historique))
	for i, e := range u.Historique {
		out.Historique[i] = e.Clone()
	}
	out.LikedActions = append(make([]int64, 0, len(u.LikedActions)), u.LikedActions...)
	return out
}

// Normalize fills in defaults for records written by older versions of the
// service, which could omit the role and the slice fields.
func (u *User) Normalize() {
	if u.Role == "" {
		u.Role = RoleParticipant
	}
	if u.Historique == nil {
		u.Historique = []HistoryEntry{}
	}
	if u.LikedActions == nil {
		u.LikedActions = []int64{}
	}
}
