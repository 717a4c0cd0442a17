package dto

type RegisterRequestDTO struct {
	Surname  string `json:"surname" example:"Ivanov"`
	Name     string `json:"name" example:"Ivan"`
	Phone    string `json:"phone" example:"+79001234567"`
	Email    string `json:"email" example:"ivan@example.com"`
	Password string `json:"password" example:"secret"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"ivan@example.com"`
	Password string `json:"password" example:"secret"`
}

type AuthResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type UpdateProfileRequestDTO struct {
	Surname string `json:"surname" example:"Ivanov"`
	Name    string `json:"name" example:"Ivan"`
	Phone   string `json:"phone" example:"+79001234567"`
}

type ProfileResponseDTO struct {
	ID      string `json:"id"`
	Surname string `json:"surname"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
