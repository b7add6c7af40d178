package services

import (
	"context"

	"github.com/vayload/contact-validator/internal/domain"
	"github.com/vayload/contact-validator/pkg/logger"
	"github.com/vayload/contact-validator/pkg/validation"
)

// ValidationService routes field values to their validators and records
// each call. Logging never changes a result; masking contact data is the
// logger's job.
type ValidationService struct {
	validators map[domain.Field]validation.Validator
	log        logger.Logger
}

type ValidationOption func(*ValidationService)

// WithValidator overrides the validator used for a field. A nil validator
// keeps the current one.
func WithValidator(field domain.Field, v validation.Validator) ValidationOption {
	return func(s *ValidationService) {
		if v == nil {
			return
		}
		s.validators[field] = v
	}
}

func NewValidationService(log logger.Logger, opts ...ValidationOption) *ValidationService {
	if log == nil {
		log = logger.Nop()
	}

	s := &ValidationService{
		validators: map[domain.Field]validation.Validator{
			domain.FieldEmail: validation.EmailValidator{},
			domain.FieldPhone: validation.PhoneValidator{},
		},
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ValidateEmail and ValidatePhone cannot miss: both fields are registered
// by NewValidationService and WithValidator never clears an entry.
func (s *ValidationService) ValidateEmail(ctx context.Context, email string) validation.ValidationResult {
	return s.run(ctx, domain.FieldEmail, s.validators[domain.FieldEmail], email)
}

func (s *ValidationService) ValidatePhone(ctx context.Context, phoneNumber string) validation.ValidationResult {
	return s.run(ctx, domain.FieldPhone, s.validators[domain.FieldPhone], phoneNumber)
}

// CustomerValidation holds the results for both contact fields.
type CustomerValidation struct {
	Email       validation.ValidationResult
	PhoneNumber validation.ValidationResult
}

func (c CustomerValidation) IsValid() bool {
	return c.Email.IsValid && c.PhoneNumber.IsValid
}

func (s *ValidationService) ValidateCustomer(ctx context.Context, email, phoneNumber string) CustomerValidation {
	return CustomerValidation{
		Email:       s.ValidateEmail(ctx, email),
		PhoneNumber: s.ValidatePhone(ctx, phoneNumber),
	}
}

// Validate runs the validator registered for field. The only error is a
// NotFound domain error for a field without a validator.
func (s *ValidationService) Validate(ctx context.Context, field domain.Field, value string) (validation.ValidationResult, error) {
	v, ok := s.validators[field]
	if !ok {
		return validation.ValidationResult{}, domain.NewNotFoundError("no validator for field " + field.String())
	}
	return s.run(ctx, field, v, value), nil
}

func (s *ValidationService) run(ctx context.Context, field domain.Field, v validation.Validator, value string) validation.ValidationResult {
	result := v.Validate(value)

	s.log.WithContext(ctx).Info("validate "+field.String(), logger.Fields{
		string(field): value,
		"is_valid":    result.IsValid,
		"result":      result.Message,
	})
	return result
}
