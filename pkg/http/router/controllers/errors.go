package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ELHF-1458/Routes/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func (api *routingAPI) writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
	return nil
}

func (api *routingAPI) errorResponse(w http.ResponseWriter, r *http.Request,
	status int, code string, message string) {
	var response errorResponse
	response.Error.Code = code
	response.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": response.Error}, nil); err != nil {
		api.log.Error("write error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *routingAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *routingAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", err.Error())
}

func (api *routingAPI) UnprocessableEntityResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusUnprocessableEntity, "unprocessable_entity", err.Error())
}

func (api *routingAPI) BadGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadGateway, "bad_gateway", err.Error())
}

func (api *routingAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.Error(err),
		zap.String("method", r.Method), zap.String("url", r.URL.String()))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_error", util.MessageInternalServerError)
}

// getStatusCode maps a usecase error to the caller-visible HTTP status
// through the sentinel code carried by util.Error.
func (api *routingAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	switch code := util.ErrorCode(err); {
	case errors.Is(code, util.ErrBadParamInput):
		api.BadRequestResponse(w, r, err)
	case errors.Is(code, util.ErrUnprocessableEntity):
		api.UnprocessableEntityResponse(w, r, err)
	case errors.Is(code, util.ErrNotFound):
		api.NotFoundResponse(w, r, err)
	case errors.Is(code, util.ErrBadGateway):
		api.BadGatewayResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
