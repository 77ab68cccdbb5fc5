package dto

// RegisterRequestDTO carries the credentials for a new student account.
type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"masha2014"`
	Password string `json:"password" validate:"required,min=8" example:"sup3r-secret"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"Student successfully registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"masha2014"`
	Password string `json:"password" validate:"required,min=8" example:"sup3r-secret"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"Student successfully authenticated"`
}
