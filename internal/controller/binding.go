package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"skillstack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// bindJSON 解析请求体，失败时直接写出 400 并返回 false
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	err := ctx.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		util.HandleError(ctx, util.NewValidationError(typeErr.Field, fmt.Sprintf("Expected a %s value.", typeErr.Type.Kind())))
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		util.BadRequest(ctx, "JSON parse error")
	default:
		util.HandleError(ctx, util.NewValidationError("non_field_errors", err.Error()))
	}
	return false
}

// pathID 解析 :id，非法时写出 404
func pathID(ctx *gin.Context) (uint, bool) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
		return 0, false
	}
	return id, true
}
