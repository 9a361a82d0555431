package api

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-frontoffice-backend/internal/recommend"
)

const (
	dateLayout = "2006-01-02"

	smokingPrefTag  = "smoking_pref"
	afterCheckInTag = "after_check_in"
)

// Stay is the date range of a booking or availability request.
type Stay struct {
	CheckIn  string `json:"check_in" form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" form:"check_out" binding:"required,datetime=2006-01-02"`
}

// Dates returns the parsed range. Call only after validation.
func (s Stay) Dates() (time.Time, time.Time) {
	in, _ := time.Parse(dateLayout, s.CheckIn)
	out, _ := time.Parse(dateLayout, s.CheckOut)
	return in, out
}

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's validator engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// report json field names in validation errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation(smokingPrefTag, smokingPrefValidation)
		v.RegisterStructValidation(stayStructValidation, Stay{})
	})
}

func smokingPrefValidation(fl validator.FieldLevel) bool {
	return recommend.Smoking(fl.Field().String()).Valid()
}

// stayStructValidation requires check-out to fall after check-in.
func stayStructValidation(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(Stay)
	if !ok {
		return
	}
	in, errIn := time.Parse(dateLayout, s.CheckIn)
	out, errOut := time.Parse(dateLayout, s.CheckOut)
	if errIn != nil || errOut != nil {
		return
	}
	if !out.After(in) {
		sl.ReportError(s.CheckOut, "check_out", "CheckOut", afterCheckInTag, "")
	}
}
