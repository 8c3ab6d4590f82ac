package validator

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tefway/ferramentas/internal/engine"
	"github.com/tefway/ferramentas/internal/metrics"
)

// API is the HTTP API for the validation engine
type API struct {
	engine  *engine.Engine
	metrics *metrics.Metrics
}

func NewAPI(eng *engine.Engine, m *metrics.Metrics) *API {
	return &API{
		engine:  eng,
		metrics: m,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/validate-logic-number", a.validateLogicNumber)
}

type validateRequest struct {
	Adquirente string `json:"adquirente"`
	Logico     string `json:"logico"`
	Codigo     string `json:"codigo"`
}

func (a *API) validateLogicNumber(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeOutcome(w, engine.Error("invalid parameter: request body must be a JSON object"), "unknown")
		return
	}

	start := time.Now()
	outcome := a.engine.Validate(engine.Record{
		engine.FieldAcquirer:    req.Adquirente,
		engine.FieldLogicNumber: req.Logico,
		engine.FieldCode:        req.Codigo,
	})
	a.metrics.ObserveValidationLatency(time.Since(start))

	a.writeOutcome(w, outcome, a.acquirerLabel(req.Adquirente))
}

func (a *API) writeOutcome(w http.ResponseWriter, outcome engine.Outcome, acquirer string) {
	a.metrics.IncrementOutcome(string(outcome.Status), acquirer)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus(outcome))
	json.NewEncoder(w).Encode(outcome)
}

// acquirerLabel keeps the metric label space bounded: only acquirers the
// policy knows appear verbatim, everything else collapses to "unknown".
func (a *API) acquirerLabel(acquirer string) string {
	if !a.engine.Supported(acquirer) {
		return "unknown"
	}
	return strings.ToLower(acquirer)
}

// httpStatus maps outcome tags to status codes: validated and
// not-yet-supported records answer 200, every failure and error answers 400.
func httpStatus(outcome engine.Outcome) int {
	switch outcome.Status {
	case engine.StatusSuccess, engine.StatusInfo:
		return http.StatusOK
	default:
		return http.StatusBadRequest
	}
}
