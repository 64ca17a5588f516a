package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// EventsHandler receives the Slack Events API callbacks the bot subscribes
// to: member_joined_channel and member_left_channel.
type EventsHandler struct {
	slackClient     contract.SlackClient
	decisionService contract.DecisionService
	signingSecret   string
}

func NewEvents(slackClient contract.SlackClient, decisionService contract.DecisionService, signingSecret string) *EventsHandler {
	return &EventsHandler{
		slackClient:     slackClient,
		decisionService: decisionService,
		signingSecret:   signingSecret,
	}
}

func (h *EventsHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		// Slack retries events not acked within 3 seconds, so the real
		// work happens off the request goroutine.
		go h.dispatchCallback(event.InnerEvent)
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *EventsHandler) dispatchCallback(inner slackevents.EventsAPIInnerEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch ev := inner.Data.(type) {
	case *slackevents.MemberJoinedChannelEvent:
		userName := h.resolveUserName(ev.User)
		if err := h.decisionService.HandleMemberJoined(ctx, ev.Channel, ev.User, userName); err != nil {
			log.Printf("Failed to handle member join in %s: %v", ev.Channel, err)
		}

	case *slackevents.MemberLeftChannelEvent:
		userName := h.resolveUserName(ev.User)
		if err := h.decisionService.HandleMemberLeft(ctx, ev.Channel, ev.User, userName); err != nil {
			log.Printf("Failed to handle member leave in %s: %v", ev.Channel, err)
		}
	}
}

func (h *EventsHandler) resolveUserName(userID string) string {
	name, err := h.slackClient.GetUserDisplayName(userID)
	if err != nil || name == "" {
		return userID
	}
	return name
}
