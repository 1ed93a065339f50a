package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/internal/logging"
	dfahttp "github.com/aretw0/dfa/pkg/adapters/http"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/dsl"
)

func newTestServer() *Server {
	b := dsl.New("digits").Start("s").Accept("s")
	b.From("s").Loop("0-9")
	return NewServer(memory.NewStore(b.Definition()), "test", logging.NewNop())
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content type %T", res.Content[0])
	return ""
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func TestHandleIsAccepted(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	resp, err := s.handleIsAccepted(ctx, mcp.CallToolRequest{}, map[string]interface{}{"name": "digits", "input": "2026"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Nil(t, resp.Trace)

	resp, err = s.handleIsAccepted(ctx, mcp.CallToolRequest{}, map[string]interface{}{"name": "digits", "input": "20x6", "trace": true})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	require.NotNil(t, resp.Trace)
	assert.Equal(t, 2, resp.Trace.StuckAt)

	_, err = s.handleIsAccepted(ctx, mcp.CallToolRequest{}, map[string]interface{}{"name": "ghost", "input": "1"})
	assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)

	_, err = s.handleIsAccepted(ctx, mcp.CallToolRequest{}, map[string]interface{}{"name": "digits", "input": strings.Repeat("1", dfahttp.MaxInputLength+1)})
	assert.ErrorContains(t, err, "too long")
}

func TestHandleList(t *testing.T) {
	res, err := newTestServer().handleList(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `["digits"]`, textOf(t, res))
}

func TestHandleRenderGraph(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	res, err := s.handleRenderGraph(ctx, callRequest(map[string]any{"name": "digits"}))
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), `s((("s")))`)

	res, err = s.handleRenderGraph(ctx, callRequest(map[string]any{"name": "digits", "format": "text"}))
	require.NoError(t, err)
	assert.Equal(t, "s -> s : 0-9\n\n", textOf(t, res))

	res, err = s.handleRenderGraph(ctx, callRequest(map[string]any{"name": "digits", "format": "svg"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleRenderGraph(ctx, callRequest(map[string]any{"name": "ghost"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
