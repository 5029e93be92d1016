package dto

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=10"`
	Password string `json:"password" binding:"required,password"`
}

type SigninRequest struct {
	Username string `json:"username" binding:"required,min=3,max=10"`
	Password string `json:"password" binding:"required,password"`
}
