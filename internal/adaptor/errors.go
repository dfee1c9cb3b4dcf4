package adaptor

import (
	"net/http"

	"movie-catalog/pkg/apperror"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps an error kind to its HTTP status and envelope.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr, _ := apperror.As(err)

	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, appErr.Message)

	case apperror.KindValidation:
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		var fields any
		if len(appErr.Fields) > 0 {
			fields = appErr.Fields
		}
		utils.ResponseBadRequest(w, appErr.Message, fields)

	case apperror.KindConstraint:
		log.Warn(operation+" rejected by store",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, appErr.Message, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
