package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultIcon is the placeholder avatar used when no icon was picked.
const DefaultIcon = "/placeholder.svg"

// Profile is a named, iconized record identifying a task-management persona.
// The ID is assigned by the service and never changes after creation.
type Profile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Draft is an id-less profile payload. It is the body of both create and
// update requests.
type Draft struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon" validate:"required,icon"`
}

// NewDraft returns an empty draft pointing at the default icon.
func NewDraft() Draft {
	return Draft{Icon: DefaultIcon}
}

// Draft returns the mutable part of the profile.
func (p Profile) Draft() Draft {
	return Draft{Name: p.Name, Icon: p.Icon}
}

// IconOption is one entry of the fixed avatar set a profile can use.
type IconOption struct {
	Src   string
	Label string
}

// IconOptions is the enumerated set of avatars offered to the user.
var IconOptions = []IconOption{
	{Src: DefaultIcon, Label: "Default"},
	{Src: "https://github.com/shadcn.png", Label: "Avatar 1"},
	{Src: "https://api.dicebear.com/7.x/avataaars/svg", Label: "Avatar 2"},
}

// IsValidIcon reports whether src is one of the predefined icon options.
func IsValidIcon(src string) bool {
	for _, opt := range IconOptions {
		if opt.Src == src {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return IsValidIcon(fl.Field().String())
	})
	return v
}

// Validate checks the draft against the client-side rules: the name must be
// non-empty and the icon must come from IconOptions.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate draft: %w", err)
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			return ErrNameRequired
		case "Icon":
			return ErrInvalidIcon
		}
	}
	return fmt.Errorf("validate draft: %w", err)
}
