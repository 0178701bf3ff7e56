package validators

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/cat-hotel/internal/timezone"
)

var catGenders = map[string]bool{
	"male":    true,
	"female":  true,
	"unknown": true,
}

// RegisterBindings adds the project's tags to gin's validator:
//
//	isodate    YYYY-MM-DD calendar date
//	catgender  male, female or unknown
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return err
	}
	return v.RegisterValidation("catgender", catGender)
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := timezone.ParseDate(fl.Field().String())
	return err == nil
}

func catGender(fl validator.FieldLevel) bool {
	return catGenders[fl.Field().String()]
}
