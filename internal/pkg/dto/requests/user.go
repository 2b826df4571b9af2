package requests

type CreateUser struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Title     string `json:"title"`
	Email     string `json:"email" validate:"required,email"`
	TeamID    string `json:"team_id" validate:"required"`
}
