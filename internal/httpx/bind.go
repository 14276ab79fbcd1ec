package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/MikeMC777/restaurant-analytics/internal/params"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(formName)
	}
}

// formName reports validation errors under the query parameter name.
func formName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// BindQuery binds the query string into obj and turns binding and validator
// failures into a *params.ValidationError.
func BindQuery(c *gin.Context, obj any) error {
	err := c.ShouldBindQuery(obj)
	if err == nil {
		return nil
	}

	verr := &params.ValidationError{}
	var ves validator.ValidationErrors
	var num *strconv.NumError
	switch {
	case errors.As(err, &ves):
		for _, fe := range ves {
			verr.Add(fe.Field(), validationMessage(fe))
		}
	case errors.As(err, &num):
		verr.Add("query", fmt.Sprintf("%q is not a valid number", num.Num))
	default:
		verr.Add("query", err.Error())
	}
	return verr
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// PathID parses a positive integer path parameter.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, params.Invalid(name, "must be a positive integer")
	}
	return id, nil
}
