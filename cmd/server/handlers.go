// file: cmd/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/d4ckard/shuttle/internal/httputils"
	"github.com/d4ckard/shuttle/internal/logging"
	"github.com/d4ckard/shuttle/internal/metrics"
	"github.com/d4ckard/shuttle/internal/project"
	"github.com/d4ckard/shuttle/internal/schema"
)

// maxRequestBody bounds validate-request bodies. Candidate names are at
// most 63 bytes, so anything near this limit is garbage anyway.
const maxRequestBody = 4096

// apiServer holds the handler dependencies for the validation API.
type apiServer struct {
	validator *schema.Validator
	collector *metrics.Collector
	logger    logging.Logger
}

func newAPIServer(validator *schema.Validator, collector *metrics.Collector, logger logging.Logger) *apiServer {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &apiServer{
		validator: validator,
		collector: collector,
		logger:    logger,
	}
}

// routes builds the HTTP mux for the API.
func (s *apiServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/names/validate", s.handleValidate)
	return mux
}

// validateRequest is the decoded request body for the validate endpoint.
// Its shape is enforced by the embedded JSON schema before decoding.
type validateRequest struct {
	Name string `json:"name"`
}

// validateResponse is the response for the validate endpoint. Message
// carries the full fixed rule list when the name is rejected; it never
// identifies which rule failed.
type validateResponse struct {
	Name    string `json:"name"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// handleValidate validates a candidate project name.
func (s *apiServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputils.WriteErrorResponse(w, httputils.CodeMethodNotAllowed,
			"validate requires POST", nil)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		s.collector.RecordRequest(true)
		httputils.WriteErrorResponse(w, httputils.CodeInvalidRequest,
			"failed to read request body", nil)
		return
	}

	// Schema-check the body before touching the name policy so malformed
	// requests are reported as such, not as invalid names.
	if err := s.validator.Validate(r.Context(), body); err != nil {
		s.collector.RecordRequest(true)
		s.logger.Debug("Rejected malformed validate request.", "error", err)

		code := httputils.CodeInvalidRequest
		if schema.IsParseError(err) {
			code = httputils.CodeParseError
		}
		httputils.WriteErrorResponse(w, code, "request body must be a JSON object with a string 'name' field", nil)
		return
	}

	var req validateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.collector.RecordRequest(true)
		httputils.WriteErrorResponse(w, httputils.CodeInternalError,
			"failed to decode request body", nil)
		return
	}

	s.collector.RecordRequest(false)

	name, err := project.New(req.Name)
	if err != nil {
		s.collector.RecordValidation(false)
		httputils.WriteJSONResponse(w, http.StatusOK, validateResponse{
			Name:    req.Name,
			Valid:   false,
			Message: project.Rules(),
		})
		return
	}

	s.collector.RecordValidation(true)
	httputils.WriteJSONResponse(w, http.StatusOK, validateResponse{
		Name:  name.String(),
		Valid: true,
	})
}

// handleHealth reports liveness.
func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputils.WriteErrorResponse(w, httputils.CodeMethodNotAllowed,
			"healthz requires GET", nil)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatus reports server and validation metrics.
func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputils.WriteErrorResponse(w, httputils.CodeMethodNotAllowed,
			"status requires GET", nil)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, s.collector.Snapshot())
}
