package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/internal/ports"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// validatePermission accepts the three notification permission states
func validatePermission(fl validator.FieldLevel) bool {
	return ports.Permission(fl.Field().String()).IsValid()
}

// RegisterValidators installs the custom binding tags on gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("notification_permission", validatePermission)
	})
	return registerErr
}
