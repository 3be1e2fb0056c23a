package api

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	DisplayName string `json:"displayName" validate:"required,max=200"`
	Password    string `json:"password" validate:"required,maxbytes=72"`
}

type RegisterResponse struct {
	Organizer *Organizer `json:"organizer"`
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expiresAt"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Organizer *Organizer `json:"organizer"`
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expiresAt"`
}

type GetCurrentOrganizerRequest struct{}

type GetCurrentOrganizerResponse struct {
	Organizer *Organizer `json:"organizer"`
}
