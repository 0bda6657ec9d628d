package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
)

var kindStatus = map[entities.Kind]int{
	entities.KindValidation:      http.StatusBadRequest,
	entities.KindNotFound:        http.StatusNotFound,
	entities.KindConflict:        http.StatusConflict,
	entities.KindUnauthenticated: http.StatusUnauthorized,
	entities.KindForbidden:       http.StatusForbidden,
	entities.KindInternal:        http.StatusInternalServerError,
}

// writeError renders a domain error with its code. Anything that is not a
// domain error is logged and hidden behind a generic message.
func writeError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	var de *entities.Error
	if errors.As(err, &de) {
		status := kindStatus[de.Code.Kind()]
		if status == http.StatusInternalServerError {
			logger.ErrorContext(ctx, msg, slog.Any("error", err))
			utils.WriteError(w, "internal server error", string(entities.CodeInternal), status)
			return
		}
		utils.WriteErrorFields(w, de.Message, string(de.Code), de.Fields, status)
		return
	}

	logger.ErrorContext(ctx, msg, slog.Any("error", err))
	utils.WriteError(w, "internal server error", string(entities.CodeInternal), http.StatusInternalServerError)
}
