package stories

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"bannerkit/ui/octicons"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	storyNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// validatorInstance returns the validator shared by the package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("story_name", func(fl validator.FieldLevel) bool {
			return storyNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("octicon", func(fl validator.FieldLevel) bool {
			_, ok := octicons.Lookup(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("dismiss", func(fl validator.FieldLevel) bool {
			d := fl.Field().String()
			return d == dismissPost || (strings.HasPrefix(d, dismissJSPrefix) && len(d) > len(dismissJSPrefix))
		})

		validateInst = v
	})
	return validateInst
}
