package view

type User struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginReq struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Next     string
}

type RegisterReq struct {
	Username string `validate:"required,min=3,max=64,alphanum"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=128" sensitive:"true"`
}
