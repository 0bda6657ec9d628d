package handler

import (
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-playground/validator/v10"
)

func identity(r *http.Request) entities.Identity {
	id, _ := auth.IdentityFrom(r.Context())
	return id
}

// decode reads a JSON body into v and validates it, answering 400 itself
// when either step fails.
func decode(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", string(entities.CodeInvalidInput), http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func pagination(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()
	if limit, ok = queryInt(w, q.Get("limit"), "limit"); !ok {
		return 0, 0, false
	}
	if offset, ok = queryInt(w, q.Get("offset"), "offset"); !ok {
		return 0, 0, false
	}
	return limit, offset, true
}

func queryInt(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		utils.WriteError(w, "invalid "+name, string(entities.CodeInvalidInput), http.StatusBadRequest)
		return 0, false
	}
	return v, true
}
