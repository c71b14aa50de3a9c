package rpc

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/go-playground/validator/v10"
	"github.com/vmkteam/zenrpc/v2"
)

const internalErrorMessage = "internal server error"

var validate = newValidator()

// FieldError describes a rejected input field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkInput validates a request struct and reports failures field by field.
func checkInput(v any) error {
	return validationError(validate.Struct(v), "")
}

// checkVar validates a single method parameter.
func checkVar(field string, value any, tag string) error {
	return validationError(validate.Var(value, tag), field)
}

func validationError(err error, field string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return zenrpc.NewStringError(http.StatusBadRequest, err.Error())
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := field
		if name == "" {
			name = fieldPath(fe.Namespace())
		}
		fields = append(fields, FieldError{Field: name, Rule: fe.Tag(), Param: fe.Param()})
	}

	return &zenrpc.Error{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Data:    fields,
	}
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// newError maps domain errors to JSON-RPC errors. Unknown errors become 500;
// their text is logged and then hidden by the error middleware.
func newError(err error) error {
	if err == nil {
		return nil
	}

	var rpcErr *zenrpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	switch {
	case errors.Is(err, blog.ErrInvalidInput):
		return zenrpc.NewStringError(http.StatusBadRequest, err.Error())
	case errors.Is(err, blog.ErrInvalidCredentials), errors.Is(err, blog.ErrUnauthorized):
		return zenrpc.NewStringError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, blog.ErrForbidden):
		return zenrpc.NewStringError(http.StatusForbidden, err.Error())
	case errors.Is(err, blog.ErrNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, err.Error())
	case errors.Is(err, blog.ErrConflict):
		return zenrpc.NewStringError(http.StatusConflict, err.Error())
	case errors.Is(err, blog.ErrExpiredToken):
		return zenrpc.NewStringError(http.StatusGone, err.Error())
	}

	return zenrpc.NewStringError(http.StatusInternalServerError, err.Error())
}
