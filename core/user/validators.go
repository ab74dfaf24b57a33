package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var (
	roleFilterTag  = "role_filter"
	roleFilterText = "unknown role"
)

// InitValidators registers the user validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(roleFilterTag, roleFilterValidation)
	core.RegisterCustomTranslation(validate, translator, roleFilterTag, roleFilterText)
}

func isRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// roleFilterValidation accepts one of AllRoles or collection.All
func roleFilterValidation(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == collection.All || isRole(role)
}
