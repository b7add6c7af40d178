package controllers

import (
	"errors"

	"github.com/vayload/contact-validator/internal/domain"
	"github.com/vayload/contact-validator/internal/services"
	"github.com/vayload/contact-validator/internal/transport/dtos"
	"github.com/vayload/contact-validator/pkg/httpi"
	"github.com/vayload/contact-validator/pkg/logger"
	"github.com/vayload/contact-validator/pkg/operator"
)

// ValidationController exposes the email and phone validators. Validation
// failures are regular 200 responses; only routing problems are errors.
type ValidationController struct {
	validationService *services.ValidationService
	log               logger.Logger
}

func NewValidationController(validationService *services.ValidationService, log logger.Logger) *ValidationController {
	if log == nil {
		log = logger.Nop()
	}
	return &ValidationController{
		validationService: validationService,
		log:               log,
	}
}

func (c *ValidationController) Path() string {
	return "/"
}

func (c *ValidationController) Middlewares() []httpi.HttpHandler {
	return nil
}

func (c *ValidationController) Routes() []httpi.HttpRoute {
	return []httpi.HttpRoute{
		{
			Path:    "/ValidateEmail/:email?",
			Method:  httpi.POST,
			Handler: c.ValidateEmail,
		},
		{
			Path:    "/ValidatePhone/:phoneNumber?",
			Method:  httpi.POST,
			Handler: c.ValidatePhone,
		},
		{
			Path:    "/ValidateCustomer",
			Method:  httpi.POST,
			Handler: c.ValidateCustomer,
		},
		{
			Path:    "/validate/:field",
			Method:  httpi.POST,
			Handler: c.ValidateField,
		},
	}
}

// ValidateEmail godoc
// @Summary      Validate an email address
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        body   body      dtos.ValidationRequest  false  "Email in body"
// @Param        email  query     string                  false  "Fallback when the body has no Email"
// @Success      200    {object}  validation.ValidationResult
// @Router       /ValidateEmail [post]
func (c *ValidationController) ValidateEmail(req httpi.HttpRequest, res httpi.HttpResponse) error {
	body := c.readBody(req)
	email := operator.Coalesce(body.Email, req.GetQuery("email"), req.GetParam("email"))

	result := c.validationService.ValidateEmail(req.Context(), email)
	return res.Status(200).Json(result)
}

// ValidatePhone godoc
// @Summary      Validate a US phone number
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        body         body      dtos.ValidationRequest  false  "PhoneNumber in body"
// @Param        phoneNumber  query     string                  false  "Fallback when the body has no PhoneNumber"
// @Success      200          {object}  validation.ValidationResult
// @Router       /ValidatePhone [post]
func (c *ValidationController) ValidatePhone(req httpi.HttpRequest, res httpi.HttpResponse) error {
	body := c.readBody(req)
	phone := operator.Coalesce(body.PhoneNumber, req.GetQuery("phoneNumber"), req.GetParam("phoneNumber"))

	result := c.validationService.ValidatePhone(req.Context(), phone)
	return res.Status(200).Json(result)
}

// ValidateCustomer godoc
// @Summary      Validate email and phone together
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        body  body      dtos.ValidationRequest  false  "Contact fields"
// @Success      200   {object}  dtos.CustomerValidationResponse
// @Router       /ValidateCustomer [post]
func (c *ValidationController) ValidateCustomer(req httpi.HttpRequest, res httpi.HttpResponse) error {
	body := c.readBody(req)
	email := operator.Coalesce(body.Email, req.GetQuery("email"))
	phone := operator.Coalesce(body.PhoneNumber, req.GetQuery("phoneNumber"))

	v := c.validationService.ValidateCustomer(req.Context(), email, phone)
	return res.Status(200).Json(dtos.CustomerValidationResponse{
		IsValid:     v.IsValid(),
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
	})
}

// ValidateField godoc
// @Summary      Validate a single field by name
// @Tags         Validation
// @Produce      json
// @Param        field  path      string  true   "email or phone"
// @Param        value  query     string  false  "Fallback when the body has no value"
// @Success      200    {object}  validation.ValidationResult
// @Failure      404    {object}  httpi.ErrorResponse
// @Router       /validate/{field} [post]
func (c *ValidationController) ValidateField(req httpi.HttpRequest, res httpi.HttpResponse) error {
	field, err := domain.ParseField(req.GetParam("field"))
	if err != nil {
		return httpi.MapFromAppException(err)
	}

	body := c.readBody(req)
	fromBody := body.Email
	if field == domain.FieldPhone {
		fromBody = body.PhoneNumber
	}

	result, err := c.validationService.Validate(req.Context(), field, operator.Coalesce(fromBody, req.GetQuery("value")))
	if err != nil {
		return httpi.MapFromAppException(err)
	}

	return res.Status(200).Json(result)
}

// readBody returns the decoded body, or an empty request when the body is
// missing or not valid JSON.
func (c *ValidationController) readBody(req httpi.HttpRequest) dtos.ValidationRequest {
	var body dtos.ValidationRequest
	if err := req.DecodeBody(&body); err != nil {
		if !errors.Is(err, httpi.ErrEmptyBody) {
			c.log.Warn("ignoring unreadable request body", logger.Fields{
				"request_id": req.RequestID(),
				"path":       req.GetPath(),
				"error":      err.Error(),
			})
		}
		return dtos.ValidationRequest{}
	}
	return body
}
