package errorz

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrInternal           = errors.New("Ocorreu um erro interno")
	ErrInvalidCredentials = errors.New("Informe email e uma senha com ao menos 4 caracteres.")
)
