package dataframe

import "errors"

// ErrInvalidInput indica um argumento inválido ou ausente.
var ErrInvalidInput = errors.New("dataframe: invalid input")

// ErrColumnNotFound indica referência a coluna inexistente no dataframe.
var ErrColumnNotFound = errors.New("dataframe: column not found")
