package apirouterv1

import (
	"github.com/gorilla/mux"

	controllerv1 "github.com/sallyverif/slq/controller"
	"github.com/sallyverif/slq/verifier/service"
)

func RouteQueryApis(app *mux.Router, version string) {
	qc := &controllerv1.QueryController{
		Version: version,
		Service: &service.QueryService{},
	}
	app.HandleFunc("/api/v1/query/parse", qc.Parse).Methods("GET", "POST")
}

func RouteMiscApis(app *mux.Router, version string) {
	mc := &controllerv1.MiscController{Version: version}
	app.HandleFunc("/ready", mc.Ready).Methods("GET")
	app.HandleFunc("/api/v1/status/buildinfo", mc.Buildinfo).Methods("GET")
}
