package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// Request DTOs validate date fields at the transport boundary with the
// same fixed layouts the services enforce.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(model.DateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("datetimeformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(model.DateTimeLayout, fl.Field().String())
		return err == nil
	})
}
