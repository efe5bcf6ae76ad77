package controllerv1

import (
	"fmt"
	"net/http"
)

type MiscController struct {
	Version string
}

func (mc *MiscController) Ready(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (mc *MiscController) Buildinfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"status":"success","data":{"version":"%s"}}`, mc.Version)))
}
