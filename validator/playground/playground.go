// Package playground bridges go-playground/validator to clip validators.
//
// Rules map a sub-argument id to a validator tag expression, so an option
// can check its bound values without hand-writing a Validator:
//
//	parser.Add(clip.NewOption([]string{"--listen"},
//		clip.SubArg("host", "The host to bind."),
//		clip.SubArg("port", "The port to bind."),
//		clip.WithValidator(playground.New(map[string]string{
//			"host": "ip|hostname",
//			"port": "numeric",
//		})),
//	))
//
// Refer to the go-playground/validator documentation for the full list of
// supported tag validations.
package playground

import (
	"github.com/go-playground/validator/v10"

	"github.com/reeflective/clip"
)

// New returns a validator checking each named sub-argument's bound value
// against its tag expression. A rule naming an undeclared sub-argument
// rejects the option.
func New(rules map[string]string) clip.Validator {
	return NewWith(validator.New(), rules)
}

// NewWith is New with a caller-supplied validator instance, for custom
// validations registered through the *validator.Validate type.
func NewWith(v *validator.Validate, rules map[string]string) clip.Validator {
	return clip.ValidatorFunc(func(opt *clip.Option) bool {
		for id, tag := range rules {
			value, err := opt.Value(id)
			if err != nil {
				return false
			}

			if err := v.Var(value, tag); err != nil {
				return false
			}
		}

		return true
	})
}
