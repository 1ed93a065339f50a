package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/internal/logging"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/dsl"
	"github.com/aretw0/dfa/pkg/ports"
)

func newTestStore() *memory.Store {
	b := dsl.New("ab").Alphabet("a", "b").Start("q0").Accept("q2")
	b.From("q0").On("a", "q1").From("q1").On("b", "q2")
	return memory.NewStore(b.Definition())
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func newHandler(loader ports.DefinitionLoader) http.Handler {
	return NewHandler(loader, WithLogger(logging.NewNop()))
}

func TestAccept(t *testing.T) {
	h := newHandler(newTestStore())

	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"a", false},
		{"ba", false},
		{"", false},
	}
	for _, tt := range tests {
		w := do(t, h, "POST", "/automata/ab/accept", `{"input": "`+tt.input+`"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AcceptResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, tt.want, resp.Accepted, "input %q", tt.input)
		assert.Nil(t, resp.Trace)
	}
}

func TestAccept_Trace(t *testing.T) {
	h := newHandler(newTestStore())

	w := do(t, h, "POST", "/automata/ab/accept?trace=true", `{"input": "abb"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AcceptResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Trace)
	assert.False(t, resp.Accepted)
	assert.True(t, resp.Trace.Stuck)
	assert.Equal(t, 2, resp.Trace.StuckAt)
	assert.Equal(t, "q2", resp.Trace.Final)
}

func TestAccept_BadRequests(t *testing.T) {
	h := newHandler(newTestStore())

	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/automata/ab/accept", `{`).Code)
	long := `{"input": "` + strings.Repeat("a", MaxInputLength+1) + `"}`
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/automata/ab/accept", long).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, "POST", "/automata/ghost/accept", `{"input": "a"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/automata/ab/accept?trace=maybe", `{"input": "a"}`).Code)
}

func TestAccept_InvalidUTF8DecodesAsReplacement(t *testing.T) {
	h := newHandler(newTestStore())

	w := do(t, h, "POST", "/automata/ab/accept?trace=true", "{\"input\": \"a\xffb\"}")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AcceptResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Accepted)
	require.NotNil(t, resp.Trace)
	assert.Equal(t, 1, resp.Trace.StuckAt)
	assert.Equal(t, "a\uFFFDb", resp.Trace.Input)
}

func TestListAndGet(t *testing.T) {
	h := newHandler(newTestStore())

	w := do(t, h, "GET", "/automata", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"automata": ["ab"]}`, w.Body.String())

	w = do(t, h, "GET", "/automata/ab", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"name": "ab",
		"states": ["q0", "q2", "q1"],
		"alphabet": ["a", "b"],
		"start": "q0",
		"accepting": ["q2"],
		"transitions": {"q0": {"a": "q1"}, "q1": {"b": "q2"}}
	}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, h, "GET", "/automata/ghost", "").Code)
}

func TestPutAndDelete(t *testing.T) {
	store := newTestStore()
	h := newHandler(store)

	t.Run("Valid Definition", func(t *testing.T) {
		w := do(t, h, "PUT", "/automata/tie", `
states: [q0, lit, class]
start: q0
accepting: [lit]
transitions:
  q0: {"5": lit, "0-9": class}
`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "nondeterministic", "overlap is reported as a warning")

		w = do(t, h, "POST", "/automata/tie/accept", `{"input": "5"}`)
		assert.Contains(t, w.Body.String(), `"accepted":true`)
	})

	t.Run("Invalid Definition", func(t *testing.T) {
		w := do(t, h, "PUT", "/automata/bad", "states: [q0]\nstart: ghost\n")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown_start")

		_, err := store.Get(context.Background(), "bad")
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, h, "PUT", "/automata/bad", "- just\n- a list\n").Code)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, do(t, h, "DELETE", "/automata/tie", "").Code)
		assert.Equal(t, http.StatusNotFound, do(t, h, "GET", "/automata/tie", "").Code)
	})
}

// readOnly hides the store methods of a DefinitionStore.
type readOnly struct{ ports.DefinitionLoader }

func TestReadOnlyLoader_HasNoWriteRoutes(t *testing.T) {
	h := newHandler(readOnly{newTestStore()})

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, "DELETE", "/automata/ab", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, "GET", "/automata/ab", "").Code)
}

func TestGraph(t *testing.T) {
	h := newHandler(newTestStore())

	w := do(t, h, "GET", "/automata/ab/graph", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `q2((("q2")))`)

	w = do(t, h, "GET", "/automata/ab/graph?input=ab", "")
	assert.Contains(t, w.Body.String(), "class q2 current;")

	w = do(t, h, "GET", "/automata/ab/graph?format=dot", "")
	assert.Contains(t, w.Body.String(), `"q2" [shape=doublecircle];`)

	w = do(t, h, "GET", "/automata/ab/graph?format=text", "")
	assert.Equal(t, "q0 -> q1 : a\nq1 -> q2 : b\n\n", w.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(t, h, "GET", "/automata/ab/graph?format=png", "").Code)
}

func TestMetricsAndHealth(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewHandler(newTestStore(), WithLogger(logging.NewNop()), WithRegistry(reg))

	do(t, h, "POST", "/automata/ab/accept", `{"input": "ab"}`)

	w := do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `dfa_decisions_total{automaton="ab",result="accepted"} 1`)

	w = do(t, h, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListenAndServe_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ListenAndServe(ctx, "127.0.0.1:0", newHandler(newTestStore()), logging.NewNop())
	}()

	cancel()
	assert.NoError(t, <-done)
}

func TestOpenAPISpec(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(OpenAPISpec())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	routes := map[string][]string{
		"/healthz":                {http.MethodGet},
		"/automata":               {http.MethodGet},
		"/automata/{name}":        {http.MethodGet, http.MethodPut, http.MethodDelete},
		"/automata/{name}/accept": {http.MethodPost},
		"/automata/{name}/graph":  {http.MethodGet},
	}
	for path, methods := range routes {
		item := doc.Paths.Value(path)
		require.NotNil(t, item, path)
		for _, method := range methods {
			assert.NotNil(t, item.GetOperation(method), "%s %s", method, path)
		}
	}

	w := do(t, newHandler(newTestStore()), "GET", "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, OpenAPISpec(), w.Body.Bytes())
}
