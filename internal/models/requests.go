package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Username *string `json:"username" validate:"required,min=1,max=100"`
	Email    *string `json:"email" validate:"required,min=1,max=255"`
	Password *string `json:"password" validate:"required"`
	Age      *int    `json:"age" validate:"required,gte=0"`
}

// CreateActionRequest is the body of POST /actions. The caller picks the ID.
type CreateActionRequest struct {
	ActionID             *int64     `json:"action_id" validate:"required"`
	ProposerID           *int64     `json:"proposer_id" validate:"required"`
	Title                *string    `json:"title" validate:"required"`
	Description          *string    `json:"description" validate:"required"`
	Type                 *string    `json:"type" validate:"required"`
	Impact               *string    `json:"impact" validate:"required"`
	ImageURL             *string    `json:"image_url"`
	Likes                int        `json:"likes" validate:"gte=0"`
	RequiredParticipants *int       `json:"required_participants" validate:"omitempty,gte=1"`
	Deadline             *Timestamp `json:"deadline"`
}

// ToAction converts a validated request into the stored record.
func (r CreateActionRequest) ToAction() Action {
	a := Action{
		ID:          *r.ActionID,
		ProposerID:  *r.ProposerID,
		Title:       *r.Title,
		Description: *r.Description,
		Type:        *r.Type,
		Impact:      *r.Impact,
		ImageURL:    r.ImageURL,
		Likes:       r.Likes,
		Deadline:    r.Deadline,
	}
	if r.RequiredParticipants != nil {
		a.RequiredParticipants = *r.RequiredParticipants
	}
	a.Normalize()
	return a
}

// UserRefRequest is the body of the like and participate routes.
type UserRefRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
}

// CodeValidationRequest is the body of POST /participations/validate.
type CodeValidationRequest struct {
	Code *string `json:"code" validate:"required"`
}

// ChatbotRequest is the body of POST /chatbot.
type ChatbotRequest struct {
	Message *string `json:"message" validate:"required"`
}

// ChatbotResponse is returned by POST /chatbot.
type ChatbotResponse struct {
	Response string `json:"response"`
}
