package models

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Nickname    string `json:"nickname" validate:"max=100"`
	Name        string `json:"name" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
}

// UpdateRequest carries the new profile values. A blank Password keeps the
// stored credential.
type UpdateRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty"`
	Nickname    string `json:"nickname" validate:"max=100"`
	Name        string `json:"name" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
}

// ProfileView is the read-only projection of an Account. It never carries the
// credential.
type ProfileView struct {
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	SocialID    *int64 `json:"social_id,omitempty"`
}

// NewProfileView projects an account into its profile view.
func NewProfileView(a *Account) ProfileView {
	return ProfileView{
		Email:       a.Email,
		Nickname:    a.Nickname,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		Role:        a.Role,
		SocialID:    a.SocialID,
	}
}
