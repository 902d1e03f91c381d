// Package validator provides struct tag-based validation.
//
// Rules are declared in a `validate` tag, separated by semicolons.
// Parameters follow a colon and are comma-separated:
//
//	type Item struct {
//		Headline string `json:"headline" validate:"required;max:200"`
//		Kind     string `json:"kind" validate:"in:lead,secondary"`
//	}
//
//	if err := validator.ValidateStruct(&item); err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			for _, e := range verrs {
//				fmt.Println(e.Field, e.Message)
//			}
//		}
//	}
//
// Field names in errors use the json tag name when one is present.
//
// Built-in rules: required, min, max, email, in. Custom rules can be added
// with RegisterValidator.
package validator
