package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/dfa/internal/metrics"
	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/internal/trace"
	"github.com/aretw0/dfa/internal/validator"
	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/automaton"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
)

//go:embed openapi.yaml
var openAPISpec []byte

// MaxInputLength bounds the input of a membership query, in bytes.
const MaxInputLength = 64 * 1024

// maxBodySize bounds request bodies, in bytes.
const maxBodySize = 1 << 20

// Server exposes a set of automata over HTTP.
type Server struct {
	Loader   ports.DefinitionLoader
	Logger   *slog.Logger
	recorder *metrics.Recorder
	registry *prometheus.Registry
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for request errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = l
	}
}

// WithRegistry sets the Prometheus registry that receives decision metrics
// and is served on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// NewHandler creates the HTTP handler. PUT and DELETE are only routed when
// loader is also a ports.DefinitionStore.
func NewHandler(loader ports.DefinitionLoader, opts ...Option) http.Handler {
	s := &Server{Loader: loader}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.recorder = metrics.New(s.registry)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(openAPISpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", s.List)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.Get)
			if _, ok := loader.(ports.DefinitionStore); ok {
				r.Put("/", s.Put)
				r.Delete("/", s.Delete)
			}
			r.Post("/accept", s.Accept)
			r.Get("/graph", s.Graph)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>DFA API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// OpenAPISpec returns the embedded OpenAPI document describing this API.
func OpenAPISpec() []byte {
	return openAPISpec
}

type errorResponse struct {
	Error  string            `json:"error"`
	Issues []validator.Issue `json:"issues,omitempty"`
}

// AcceptRequest is the body of POST /automata/{name}/accept.
type AcceptRequest struct {
	Input string `json:"input"`
}

// AcceptResponse is the result of a membership query.
type AcceptResponse struct {
	Name     string        `json:"name"`
	Input    string        `json:"input"`
	Accepted bool          `json:"accepted"`
	Trace    *trace.Result `json:"trace,omitempty"`
}

// List handles GET /automata.
func (s *Server) List(w http.ResponseWriter, r *http.Request) {
	names, err := s.Loader.List(r.Context())
	if err != nil {
		s.fail(w, "List", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"automata": names})
}

// Get handles GET /automata/{name}. Transitions keep their declared order.
func (s *Server) Get(w http.ResponseWriter, r *http.Request) {
	def, ok := s.load(w, r)
	if !ok {
		return
	}
	data, err := file.EncodeJSON(*def)
	if err != nil {
		s.fail(w, "Get", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// Put handles PUT /automata/{name}. The body is a YAML or JSON definition.
// Definitions with error-level issues are rejected with 400.
func (s *Server) Put(w http.ResponseWriter, r *http.Request) {
	store := s.Loader.(ports.DefinitionStore)
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read body"})
		return
	}
	def, err := file.Decode(body)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	def.Name = name

	issues := validator.Validate(def)
	for _, issue := range issues {
		if issue.Severity == validator.SeverityError {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidDefinition.Error(), Issues: issues})
			return
		}
	}

	if err := store.Save(r.Context(), &def); err != nil {
		s.fail(w, "Put", err)
		return
	}
	s.Logger.Info("automaton saved", "name", name, "warnings", len(issues))
	s.writeJSON(w, http.StatusOK, map[string]any{"name": name, "issues": issues})
}

// Delete handles DELETE /automata/{name}.
func (s *Server) Delete(w http.ResponseWriter, r *http.Request) {
	store := s.Loader.(ports.DefinitionStore)
	if err := store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, "Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Accept handles POST /automata/{name}/accept. With ?trace=true the response
// also carries the replayed path.
func (s *Server) Accept(w http.ResponseWriter, r *http.Request) {
	var withTrace bool
	if err := runtime.BindQueryParameter("form", true, false, "trace", r.URL.Query(), &withTrace); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid format for parameter trace: %s", err)})
		return
	}

	var body AcceptRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		s.Logger.Warn("Accept: Invalid request body", "error", err)
		return
	}
	// The JSON decoder has already replaced invalid UTF-8 with U+FFFD.
	if len(body.Input) > MaxInputLength {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "input rejected: too long"})
		s.Logger.Warn("Accept: Input rejected", "size", len(body.Input))
		return
	}

	def, ok := s.load(w, r)
	if !ok {
		return
	}
	eng := automaton.New(*def)

	began := time.Now()
	accepted := eng.IsAccepted(body.Input)
	s.recorder.Observe(def.Name, accepted, utf8.RuneCountInString(body.Input), time.Since(began))

	resp := AcceptResponse{Name: def.Name, Input: body.Input, Accepted: accepted}
	if withTrace {
		res := trace.Run(eng, body.Input)
		resp.Trace = &res
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// Graph handles GET /automata/{name}/graph?format=mermaid|dot|text.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	var format string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid format for parameter format: %s", err)})
		return
	}

	def, ok := s.load(w, r)
	if !ok {
		return
	}
	eng := automaton.New(*def)

	switch format {
	case "", "mermaid":
		var overlay *graph.Overlay
		if input, ok := r.URL.Query()["input"]; ok {
			res := trace.Run(eng, input[0])
			overlay = &graph.Overlay{VisitedStates: res.Path(eng.Start()), CurrentState: res.Final}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, graph.GenerateMermaid(eng, overlay))
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		_, _ = io.WriteString(w, graph.GenerateDOT(eng, def.Name))
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_ = graph.WriteTransitions(w, eng)
	default:
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown format %q", format)})
	}
}

func (s *Server) load(w http.ResponseWriter, r *http.Request) (*domain.Definition, bool) {
	name := chi.URLParam(r, "name")
	def, err := s.Loader.Get(r.Context(), name)
	if err != nil {
		s.fail(w, "Load", err)
		return nil, false
	}
	if def.Name == "" {
		def.Name = name
	}
	return def, true
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrDefinitionNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidDefinition):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.Logger.Error(op+" failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

// ListenAndServe serves handler on addr until ctx is canceled, then shuts
// down gracefully within five seconds.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logger.Info("shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
