package errors

import "fmt"

var (
	ErrNotFound = fmt.Errorf("запись не найдена")

	// Сущности. Разворачиваются в ErrNotFound, чтобы общая проверка
	// errors.Is давала 404, а текст говорил, что именно не нашлось.
	ErrEquipmentNotFound = fmt.Errorf("оборудование: %w", ErrNotFound)
	ErrTeamNotFound      = fmt.Errorf("команда: %w", ErrNotFound)
	ErrRequestNotFound   = fmt.Errorf("заявка: %w", ErrNotFound)
)

// HttpError несёт HTTP-код вместе с сообщением для клиента и исходной причиной.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
