package dto

type SignupDTO struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ID       string `json:"id"       example:"66c6248b98c56c39f018e7d2"`
	Name     string `json:"name"     example:"Saurabh"`
	Username string `json:"username" example:"saurabh"`
	Token    string `json:"token"`
}
