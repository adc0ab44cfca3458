package webform

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/zoumapps/validation/pkg/field"
)

// slot binds one engine field to the adapter. The mutex serializes all
// engine calls for the field; indicated captures the indicator signal fired
// during ShowValidity so the response can carry it to the client.
type slot struct {
	mu        sync.Mutex
	field     *field.Field
	lastText  string
	seenText  bool
	indicated bool
}

// Server serves the check/show/commit endpoints for a set of declared forms.
type Server struct {
	log   *slog.Logger
	forms map[string]map[string]*slot
}

// Option configures a Server.
type Option func(*Server)

// WithLogger replaces the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// New builds a Server from a parsed form description.
func New(desc Description, opts ...Option) *Server {
	s := &Server{
		log:   slog.Default(),
		forms: make(map[string]map[string]*slot),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, form := range desc.Forms {
		slots := make(map[string]*slot, len(form.Fields))
		for _, fs := range form.Fields {
			sl := &slot{}
			// The indicator runs inside ShowValidity while the slot mutex is
			// held by the handler, so the write is serialized.
			sl.field = fs.build(func() { sl.indicated = true })
			slots[fs.Name] = sl
		}
		s.forms[form.Name] = slots
	}
	return s
}

// Handler returns the chi router for the adapter.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/forms/{form}/fields/{field}", func(r chi.Router) {
		r.Post("/check", s.handleCheck)
		r.Post("/show", s.handleShow)
		r.Post("/commit", s.handleCommit)
	})
	return r
}

type textRequest struct {
	Text string `json:"text"`
}

type checkResponse struct {
	Valid bool `json:"valid"`
}

type showResponse struct {
	Valid    bool `json:"valid"`
	Indicate bool `json:"indicate"`
}

type commitResponse struct {
	Text      string `json:"text"`
	Rewritten bool   `json:"rewritten"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	sl, req, ok := s.begin(w, r)
	if !ok {
		return
	}

	sl.mu.Lock()
	sl.observe(req.Text)
	valid := sl.field.CheckValidity(req.Text)
	sl.mu.Unlock()

	s.log.Info("field checked",
		"form", chi.URLParam(r, "form"),
		"field", chi.URLParam(r, "field"),
		"valid", valid,
	)
	writeJSON(w, http.StatusOK, checkResponse{Valid: valid})
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	sl, req, ok := s.begin(w, r)
	if !ok {
		return
	}

	sl.mu.Lock()
	sl.observe(req.Text)
	sl.indicated = false
	valid := sl.field.ShowValidity(req.Text)
	indicate := sl.indicated
	sl.mu.Unlock()

	s.log.Info("field shown",
		"form", chi.URLParam(r, "form"),
		"field", chi.URLParam(r, "field"),
		"valid", valid,
		"indicate", indicate,
	)
	writeJSON(w, http.StatusOK, showResponse{Valid: valid, Indicate: indicate})
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	sl, req, ok := s.begin(w, r)
	if !ok {
		return
	}

	sl.mu.Lock()
	sl.observe(req.Text)
	fixed, rewritten := sl.field.Sanitize(req.Text)
	if rewritten {
		// The host's write-back: the rewritten text becomes the observed
		// value and the engine is told it changed. It is validated on the
		// next read, never inside this trigger.
		sl.lastText = fixed
		sl.field.NotifyTextChanged()
	}
	sl.mu.Unlock()

	s.log.Info("field committed",
		"form", chi.URLParam(r, "form"),
		"field", chi.URLParam(r, "field"),
		"rewritten", rewritten,
	)
	writeJSON(w, http.StatusOK, commitResponse{Text: fixed, Rewritten: rewritten})
}

// observe fulfils the engine's text-change contract: the engine is notified
// exactly when the submitted text differs from the last one this slot saw,
// so identical repeated reads stay cached. Callers hold the slot mutex.
func (sl *slot) observe(text string) {
	if sl.seenText && text == sl.lastText {
		return
	}
	sl.lastText = text
	sl.seenText = true
	sl.field.NotifyTextChanged()
}

// begin resolves the addressed slot and decodes the request body.
func (s *Server) begin(w http.ResponseWriter, r *http.Request) (*slot, textRequest, bool) {
	formName := chi.URLParam(r, "form")
	fieldName := chi.URLParam(r, "field")

	slots, ok := s.forms[formName]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown form"})
		return nil, textRequest{}, false
	}
	sl, ok := slots[fieldName]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown field"})
		return nil, textRequest{}, false
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return nil, textRequest{}, false
	}
	return sl, req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
