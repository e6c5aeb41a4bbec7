package handler

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"time"

	"aguanueva/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var (
	// DNI/NIE: one digit or letter, seven digits, one control letter
	dniRe = regexp.MustCompile(`^[0-9A-Z][0-9]{7}[A-Z]$`)
	// Case code: three uppercase letters plus five digits (e.g. AGU00001)
	expedienteRe = regexp.MustCompile(`^[A-Z]{3}[0-9]{5}$`)
)

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

	_ = validate.RegisterValidation("dni", func(fl validator.FieldLevel) bool {
		return dniRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("expediente", func(fl validator.FieldLevel) bool {
		return expedienteRe.MatchString(fl.Field().String())
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// bindQueryAndValidate binds query parameters (typed filters) the same way.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.Validation(fields))
		return false
	}
	return true
}

// bindRangoFechas reads the optional desde/hasta query bounds, rejecting
// malformed dates. Both may be absent; the service decides whether that is
// acceptable.
func bindRangoFechas(c *gin.Context) (desde, hasta *string, ok bool) {
	if v, present := c.GetQuery("desde"); present && v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.Validation(map[string]string{"desde": "datetime"}))
			return nil, nil, false
		}
		desde = &v
	}
	if v, present := c.GetQuery("hasta"); present && v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.Validation(map[string]string{"hasta": "datetime"}))
			return nil, nil, false
		}
		hasta = &v
	}
	return desde, hasta, true
}

// respondError writes typed API errors with their status; anything else goes
// through the error middleware as a generic 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apiErr)
		return
	}
	_ = c.Error(err)
}
