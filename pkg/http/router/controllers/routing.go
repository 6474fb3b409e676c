package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"github.com/ELHF-1458/Routes/pkg"
	helper "github.com/ELHF-1458/Routes/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

// BackendInfo feeds the /health payload: where requests are proxied and how
// the public profile degrades on that backend.
type BackendInfo struct {
	BaseURL     string
	ProfileNote string
}

type routingAPI struct {
	routingService RoutingService
	backend        BackendInfo
	log            *zap.Logger
}

func New(routingService RoutingService, backend BackendInfo, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		backend:        backend,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/health", api.health)
	group.POST("/route", api.planRoute)
}

func (api *routingAPI) health(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	response := healthResponse{
		Status:        "ok",
		BackendBase:   api.backend.BaseURL,
		MappedProfile: api.backend.ProfileNote,
	}
	if err := api.writeJSON(w, http.StatusOK, response, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *routingAPI) planRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
	request.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	result, err := api.routingService.PlanRoute(r.Context(), request.waypoints(),
		pkg.ParseMetric(request.Metric), request.optimizeEnabled(), request.Profile)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, NewRouteResponse(result), headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
