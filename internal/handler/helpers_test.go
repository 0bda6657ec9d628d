package handler_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/go-chi/chi/v5"
)

const (
	orderID   = "0b6f3c62-8e7f-4a57-9d0e-4f7f6f0b1a11"
	productID = "6a1d2f0e-7b44-4c1e-8f5e-3d2b1c0a9e88"
	storeID   = "c4f9a8e2-1d3b-4e6f-a7c5-9b8d2e1f0a33"
)

var (
	customer = entities.Identity{Subject: "user-1", Roles: []entities.Role{entities.RoleCustomer}, Active: true}
	admin    = entities.Identity{Subject: "admin-1", Roles: []entities.Role{entities.RoleAdmin}, Active: true}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

// serve routes one request through h, optionally as id.
func serve(h initer, id *entities.Identity, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if id != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), *id))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
