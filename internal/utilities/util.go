// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"
	"reflect"

	"github.com/gin-gonic/gin"

	"devagent-backend/internal/model"
)

// ErrorResponse type for error response body
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for message response body
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request, it returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// MergeNonEmpty copies non-zero fields of src into fields of dst with the same
// name and type. Both arguments must be pointers to structs.
func MergeNonEmpty(dst, src interface{}) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src).Elem()
	st := sv.Type()

	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Field(i)
		if sf.IsZero() || !st.Field(i).IsExported() {
			continue
		}
		df := dv.FieldByName(st.Field(i).Name)
		if df.IsValid() && df.CanSet() && df.Type() == sf.Type() {
			df.Set(sf)
		}
	}
}
