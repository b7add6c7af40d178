package domain

import "errors"

type DomainError struct {
	Kind    ErrorKind
	Message string
}

type ErrorKind uint

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindNotFound
	ErrorKindValidation
)

var ErrorKindMap = map[ErrorKind]string{
	ErrorKindUnknown:    "UNKNOWN",
	ErrorKindNotFound:   "NOT_FOUND",
	ErrorKindValidation: "VALIDATION_ERROR",
}

func (e DomainError) Error() string {
	return e.Message
}

func (k ErrorKind) String() string {
	if s, ok := ErrorKindMap[k]; ok {
		return s
	}
	return ErrorKindMap[ErrorKindUnknown]
}

func NewNotFoundError(message string) error {
	return DomainError{Kind: ErrorKindNotFound, Message: message}
}

func NewValidationError(message string) error {
	return DomainError{Kind: ErrorKindValidation, Message: message}
}

// KindOf reports the kind of the first DomainError in err's chain.
func KindOf(err error) ErrorKind {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrorKindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == ErrorKindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == ErrorKindValidation
}
