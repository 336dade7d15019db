package mcp

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing render service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Content: &mockContentService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingRenderService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Render:  &mockRenderService{},
			Content: &mockContentService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("missing render", func(t *testing.T) {
		ports := &Ports{Content: &mockContentService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingRenderService)
	})

	t.Run("missing content", func(t *testing.T) {
		ports := &Ports{Render: &mockRenderService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingContentService)
	})

	t.Run("changelog is optional", func(t *testing.T) {
		ports := &Ports{Render: &mockRenderService{}, Content: &mockContentService{}}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_InMemorySession(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(nil)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"render", "changelog", "faq_lookup"}, names)

	res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "collab://faq/how-do-i-pay"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "How do I pay?")
}

func TestServer_InstructionsSentOnInitialize(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(nil)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	result := session.InitializeResult()
	require.NotNil(t, result)
	assert.Equal(t, "collab", result.ServerInfo.Name)
	assert.Contains(t, result.Instructions, "faq_lookup")
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	server := newTestServer(nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServer_RunHTTPBadAddress(t *testing.T) {
	server := newTestServer(nil)

	err := server.RunHTTP(context.Background(), "not-an-address")

	assert.ErrorContains(t, err, "listening on not-an-address")
}
