// Package test provides shared helpers for handler tests: mocked services
// and signed Slack requests.
package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/handlers"
	"github.com/diegoclair/slack-decision-bot/mocks"
	"go.uber.org/mock/gomock"
)

// SigningSecret is the secret handler tests sign their requests with.
const SigningSecret = "test-signing-secret"

// ServiceMocks holds the mocked collaborators behind the handler.
type ServiceMocks struct {
	DecisionServiceMock *mocks.MockDecisionService
	SlackClientMock     *mocks.MockSlackClient
}

// GetHandlerTest builds a SlackHandler on top of fresh mocks.
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		DecisionServiceMock: mocks.NewMockDecisionService(ctrl),
		SlackClientMock:     mocks.NewMockSlackClient(ctrl),
	}
	handler = handlers.New(m.SlackClientMock, m.DecisionServiceMock, SigningSecret)
	return
}

// SlashCommandParams carries the Slack form fields a test wants to send.
type SlashCommandParams struct {
	Text      string
	UserID    string
	UserName  string
	ChannelID string
	TeamID    string
}

// CreateSlackRequest builds a form-encoded slash command POST with a valid
// Slack signature over the body.
func CreateSlackRequest(t *testing.T, params SlashCommandParams) *http.Request {
	t.Helper()

	if params.UserID == "" {
		params.UserID = "U111"
	}
	if params.UserName == "" {
		params.UserName = "alice"
	}
	if params.ChannelID == "" {
		params.ChannelID = "C100"
	}
	if params.TeamID == "" {
		params.TeamID = "T100"
	}

	form := url.Values{}
	form.Set("command", "/decision")
	form.Set("text", params.Text)
	form.Set("user_id", params.UserID)
	form.Set("user_name", params.UserName)
	form.Set("channel_id", params.ChannelID)
	form.Set("team_id", params.TeamID)
	body := form.Encode()

	req := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", GenerateSlackSignature(SigningSecret, timestamp, body))
	return req
}

// GenerateSlackSignature computes the v0 HMAC-SHA256 request signature.
func GenerateSlackSignature(secret, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + timestamp + ":" + body))
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}
