package cloud

import "errors"

// ErrInvalidInput indica falha de validação local, antes de qualquer chamada à AWS.
var ErrInvalidInput = errors.New("cloud: invalid input")

// ErrDatasetNotAllowed indica que o dataset existe no catálogo mas não pode
// ser entregue via API (api_status diferente de "active").
var ErrDatasetNotAllowed = errors.New("cloud: dataset not allowed")
