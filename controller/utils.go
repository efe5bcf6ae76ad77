package controllerv1

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/sallyverif/slq/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type errorEnvelope struct {
	Status    string         `json:"status"`
	ErrorType string         `json:"errorType"`
	Error     string         `json:"error"`
	Position  *errorPosition `json:"position,omitempty"`
	Issues    []string       `json:"issues,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(successEnvelope{Status: "success", Data: data}); err != nil {
		logger.Error(err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, errorType string, err error) {
	writeErrorEnvelope(w, code, errorEnvelope{
		Status:    "error",
		ErrorType: errorType,
		Error:     err.Error(),
	})
}

func writeErrorEnvelope(w http.ResponseWriter, code int, env errorEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error(err.Error())
	}
}
