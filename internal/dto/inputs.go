package dto

// Guided flows collect these field by field, then the owning service
// validates the assembled struct before touching the repository.

type RegisterInput struct {
	Username string `validate:"required,max=15"`
	Password string `validate:"required,max=15"`
	Email    string `validate:"omitempty,max=28"`
}

type PasswordChangeInput struct {
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,max=15"`
}

type PostInput struct {
	Title   string   `validate:"required,max=30"`
	Content string   `validate:"required"`
	Labels  []string `validate:"dive,required,max=50"`
}

type MessageInput struct {
	Receiver string `validate:"required,max=15"`
	Content  string `validate:"required"`
}
