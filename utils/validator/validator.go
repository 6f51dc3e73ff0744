package validatorx

import (
	"errors"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Failed reports whether err holds a failure of tag on the named struct field.
// An empty tag matches any failure on the field.
func Failed(err error, field, tag string) bool {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == field && (tag == "" || fe.Tag() == tag) {
			return true
		}
	}
	return false
}
