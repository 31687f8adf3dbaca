package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	"github.com/muhammadheryan/femnest/utils/errors"
	"github.com/muhammadheryan/femnest/utils/logger"
	"go.uber.org/zap"
)

// Response is the success envelope.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope. Notification is what the client shows
// as a toast; Errors holds per-field messages for inline display.
type ErrorResponse struct {
	Code         string             `json:"code"`
	Message      string             `json:"message"`
	Notification model.Notification `json:"notification"`
	Errors       map[string]string  `json:"errors,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		logger.Error("unmapped error reached transport", zap.Error(err))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:         ce.ErrorCode(),
		Message:      ce.Error(),
		Notification: ce.Notification(),
		Errors:       ce.Fields(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("failed to encode response", zap.Error(err))
	}
}
