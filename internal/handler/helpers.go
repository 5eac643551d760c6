package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/zorguiala/domdom/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewResponse("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusBadRequest, &apierror.Response{ErrorMsg: "validation failed", Details: fields})
		return false
	}
	return true
}

func errInvalidQuery(err error) *apierror.Response {
	return apierror.NewResponse("invalid query parameters: " + err.Error())
}

// parseID reads a uuid path parameter. Writes the 400 response on failure.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewResponse("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps a service error onto the wire envelope. Services speak in
// apierror kinds; anything unclassified is attached to the context and the
// error-handler middleware writes the single 500 envelope.
func respondError(c *gin.Context, err error) {
	var ae *apierror.Error
	if !errors.As(err, &ae) {
		_ = c.Error(err)
		c.Abort()
		return
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case apierror.KindValidation, apierror.KindBusinessRule:
		status = http.StatusBadRequest
	case apierror.KindNotFound:
		status = http.StatusNotFound
	case apierror.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, &apierror.Response{ErrorMsg: ae.Message, Details: ae.Details})
}
