package controllerv1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sallyverif/slq/logger"
	"github.com/sallyverif/slq/verifier/query"
	"github.com/sallyverif/slq/verifier/service"
	"github.com/sallyverif/slq/verifier/slq_parser"
)

type QueryController struct {
	Version string
	Service *service.QueryService
}

type parseRequest struct {
	Query  string `json:"query"`
	Strict bool   `json:"strict"`
}

type parseResponseData struct {
	Query     *query.Query `json:"query"`
	Canonical string       `json:"canonical"`
	Issues    []string     `json:"issues"`
}

// Parse handles GET /api/v1/query/parse?query=...&strict=... and the POST
// form with a JSON body. Success returns the AST, its canonical form and
// any engine-side combination issues; a parse failure returns 400 with the
// error kind and position.
func (qc *QueryController) Parse(w http.ResponseWriter, r *http.Request) {
	req, err := qc.parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("query parameter is required"))
		return
	}
	res, err := qc.Service.ParseQuery(req.Query, req.Strict)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	issues := res.Issues
	if issues == nil {
		issues = []string{}
	}
	writeSuccess(w, parseResponseData{
		Query:     res.Query,
		Canonical: res.Canonical,
		Issues:    issues,
	})
}

func (qc *QueryController) parseRequest(r *http.Request) (parseRequest, error) {
	req := parseRequest{
		Query:  r.URL.Query().Get("query"),
		Strict: r.URL.Query().Get("strict") == "true",
	}
	if r.Method != http.MethodPost {
		return req, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	if len(body) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("invalid request body: %v", err)
	}
	return req, nil
}

func writeQueryError(w http.ResponseWriter, err error) {
	var parseErr *slq_parser.Error
	if errors.As(err, &parseErr) {
		logger.Debug("rejected query: ", parseErr)
		writeErrorEnvelope(w, http.StatusBadRequest, errorEnvelope{
			Status:    "error",
			ErrorType: parseErr.Kind.String(),
			Error:     parseErr.Msg,
			Position: &errorPosition{
				Offset: parseErr.Pos.Offset,
				Line:   parseErr.Pos.Line,
				Column: parseErr.Pos.Column,
			},
		})
		return
	}
	var valErr *query.ValidationError
	if errors.As(err, &valErr) {
		writeErrorEnvelope(w, http.StatusUnprocessableEntity, errorEnvelope{
			Status:    "error",
			ErrorType: "validation",
			Error:     valErr.Error(),
			Issues:    valErr.Issues,
		})
		return
	}
	logger.Error(err.Error())
	writeError(w, http.StatusInternalServerError, "internal", err)
}
