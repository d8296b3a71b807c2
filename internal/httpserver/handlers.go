package httpserver

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/skillcoder/kbs-deployer/internal/infra/pinger"
)

const (
	probeOK   = "ok"
	probeFail = "unavailable"
)

type probeResponse struct {
	Status  string   `json:"status"`
	Failing []string `json:"failing,omitempty"`
}

type statusResponse struct {
	State     string    `json:"state"`
	Uptime    string    `json:"uptime"`
	StartTime time.Time `json:"startTime"`
	UptimeSec float64   `json:"uptimeSeconds"`

	Checks map[string]*pinger.Statistics `json:"checks,omitempty"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeProbe(w, r, s.appState.IsHealthy(), func(st *pinger.Statistics) bool {
		return !st.IsHealthy
	})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	s.writeProbe(w, r, s.appState.IsReady(), func(st *pinger.Statistics) bool {
		return !st.IsReady
	})
}

// writeProbe answers 200 or 503 and lists the checks matching failing. A
// listed check does not imply the 503: non-critical checks are reported
// without failing the probe.
func (s *Server) writeProbe(
	w http.ResponseWriter,
	r *http.Request,
	ok bool,
	failing func(st *pinger.Statistics) bool,
) {
	resp := probeResponse{Status: probeOK}
	code := http.StatusOK

	if !ok {
		resp.Status = probeFail
		code = http.StatusServiceUnavailable
	}

	for name, st := range s.appState.GetAllStats() {
		if failing(st) {
			resp.Failing = append(resp.Failing, name)
		}
	}

	slices.Sort(resp.Failing)

	s.writeJSON(w, r, code, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	uptime := s.appState.GetUptime()

	s.writeJSON(w, r, http.StatusOK, statusResponse{
		State:     string(s.appState.GetState()),
		Uptime:    uptime.String(),
		StartTime: s.appState.GetStartTime(),
		UptimeSec: uptime.Seconds(),
		Checks:    s.appState.GetAllStats(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response",
			"path", r.URL.Path,
			"reason", err,
		)
	}
}
