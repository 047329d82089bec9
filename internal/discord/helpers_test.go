package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord API calls
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// capturedCall is one request the session sent to Discord
type capturedCall struct {
	Method string
	Path   string
	Body   []byte
}

// TestContext holds a session whose HTTP traffic is captured instead of sent
type TestContext struct {
	Session *discordgo.Session

	mu    sync.Mutex
	calls []capturedCall
	// responses maps a path suffix to the JSON returned for it
	responses map[string]string
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{Session: session, responses: map[string]string{}}
	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}

			tc.mu.Lock()
			tc.calls = append(tc.calls, capturedCall{Method: req.Method, Path: req.URL.Path, Body: body})
			resp := "{}"
			for suffix, r := range tc.responses {
				if strings.HasSuffix(req.URL.Path, suffix) {
					resp = r
				}
			}
			tc.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(resp)),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Request:    req,
			}, nil
		},
	}}
	return tc
}

// Respond sets the JSON body returned for paths ending in suffix
func (tc *TestContext) Respond(suffix, body string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.responses[suffix] = body
}

// Calls returns the captured requests
func (tc *TestContext) Calls() []capturedCall {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]capturedCall(nil), tc.calls...)
}

// LastEdit decodes the final edit of the deferred interaction response
func (tc *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	calls := tc.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == http.MethodPatch && strings.HasSuffix(calls[i].Path, "/messages/@original") {
			var edit discordgo.WebhookEdit
			require.NoError(t, json.Unmarshal(calls[i].Body, &edit))
			return edit
		}
	}
	t.Fatal("no interaction response edit captured")
	return discordgo.WebhookEdit{}
}

// slashCommand builds an application command interaction
func slashCommand(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "interaction-1",
		AppID:  "app-1",
		Token:  "token-1",
		Type:   discordgo.InteractionApplicationCommand,
		Data:   discordgo.ApplicationCommandInteractionData{Name: name},
		Member: &discordgo.Member{User: &discordgo.User{ID: "user-1", Username: "alice"}},
	}}
}
