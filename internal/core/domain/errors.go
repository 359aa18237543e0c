package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailTaken         = errors.New("el correo ya está registrado")
	ErrInvalidCredentials = errors.New("contraseña incorrecta")
	ErrInvalidID          = errors.New("id no válido")
	ErrTokenMissing       = errors.New("token ausente")
	ErrTokenInvalid       = errors.New("token inválido")
	ErrProductNotFound    = errors.New("producto no encontrado")
)
