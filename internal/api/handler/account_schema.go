package handler

// loginForm is the POST /account/login payload.
type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// registerForm is the POST /account/register payload.
type registerForm struct {
	FirstName       string `form:"first_name" validate:"required,min=2,max=50"`
	LastName        string `form:"last_name" validate:"required,min=2,max=50"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,password"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

// updateForm is the POST /account/update payload. Password is optional; when
// present it must satisfy the strength rule and match its confirmation.
type updateForm struct {
	AccountID       string `form:"account_id" validate:"required"`
	FirstName       string `form:"first_name" validate:"required,min=2,max=50"`
	LastName        string `form:"last_name" validate:"required,min=2,max=50"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"omitempty,password"`
	PasswordConfirm string `form:"password_confirm" validate:"eqfield=Password"`
}
