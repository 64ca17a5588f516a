package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-decision-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient     contract.SlackClient
	decisionService contract.DecisionService
	signingSecret   string
}

func New(slackClient contract.SlackClient, decisionService contract.DecisionService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:     slackClient,
		decisionService: decisionService,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
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

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd := slackcmd.ParseCommand(s.Text)
	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !cmd.Valid {
		return ephemeral("❌ " + cmd.ErrMsg)
	}

	switch cmd.Action {
	case slackcmd.ActionPropose:
		return h.handlePropose(r, cmd, slashCmd)
	case slackcmd.ActionAdd:
		return h.handleAdd(r, cmd, slashCmd)
	case slackcmd.ActionApprove:
		return h.handleVote(r, cmd, slashCmd, domain.VoteApprove)
	case slackcmd.ActionReject:
		return h.handleVote(r, cmd, slashCmd, domain.VoteReject)
	case slackcmd.ActionShow:
		return h.handleShow(r, cmd)
	case slackcmd.ActionMyVote:
		return h.handleMyVote(r, cmd, slashCmd)
	case slackcmd.ActionList:
		return h.handleList(r, cmd, slashCmd)
	case slackcmd.ActionSearch:
		return h.handleSearch(r, cmd, slashCmd)
	case slackcmd.ActionSummarize:
		return h.handleSummarize(r, slashCmd)
	case slackcmd.ActionSuggest:
		return h.handleSuggest(r, slashCmd)
	case slackcmd.ActionConfig:
		return h.handleConfig(r, cmd, slashCmd)
	case slackcmd.ActionHelp:
		return ephemeral(slackcmd.GetHelpText())
	default:
		return ephemeral("❌ " + cmd.ErrMsg)
	}
}

func (h *SlackHandler) handlePropose(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	decision, err := h.decisionService.Propose(r.Context(),
		slashCmd.ChannelID, slashCmd.TeamID, cmd.Text, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.errorResponse(err)
	}

	// The proposal announcement goes to the whole channel so everyone
	// knows there is something to vote on.
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         formatProposalSuccess(decision),
	}
}

func (h *SlackHandler) handleAdd(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	decision, err := h.decisionService.AddApproved(r.Context(),
		slashCmd.ChannelID, slashCmd.TeamID, cmd.Text, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.errorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ *Pre-approved decision recorded*\n\n*Decision #%d*\n%s\n\n👤 *Added by:* %s",
			decision.ID, decision.Text, decision.ProposerName),
	}
}

func (h *SlackHandler) handleVote(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand, voteType string) *slack.Msg {
	decision, err := h.decisionService.Vote(r.Context(),
		cmd.ID, slashCmd.UserID, slashCmd.UserName, voteType, cmd.Anonymous())
	if err != nil {
		return h.voteErrorResponse(err, cmd.ID)
	}

	// When the vote closed the decision, announce the outcome to the
	// channel. The voter still gets their private confirmation below.
	if domain.IsTerminalStatus(decision.Status) {
		_, votes, verr := h.decisionService.GetDecision(r.Context(), decision.ID)
		if verr != nil {
			log.Printf("Failed to load votes for closed decision %d: %v", decision.ID, verr)
		}
		if _, perr := h.slackClient.PostMessage(decision.ChannelID, formatDecisionClosed(decision, votes)); perr != nil {
			log.Printf("Failed to announce closed decision %d: %v", decision.ID, perr)
		}
	}

	return ephemeral(formatVoteConfirmation(decision, voteType, cmd.Anonymous()))
}

func (h *SlackHandler) handleShow(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	decision, votes, err := h.decisionService.GetDecision(r.Context(), cmd.ID)
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral(formatDecisionDetail(decision, votes))
}

func (h *SlackHandler) handleMyVote(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	decision, vote, err := h.decisionService.GetUserVote(r.Context(), cmd.ID, slashCmd.UserID)
	if err != nil {
		return h.errorResponse(err)
	}
	if vote == nil {
		return ephemeral(fmt.Sprintf(
			"❓ You have not voted on decision #%d yet.\n\n*Decision:* %s\n\nUse `/decision approve %d` or `/decision reject %d` to vote.",
			decision.ID, decision.Text, decision.ID, decision.ID))
	}
	return ephemeral(formatUserVoteDetail(vote, decision))
}

func (h *SlackHandler) handleList(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	decisions, summary, err := h.decisionService.ListDecisions(r.Context(),
		slashCmd.ChannelID, cmd.Status, cmd.Page)
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral(formatDecisionList(decisions, summary, cmd.Status, cmd.Page))
}

func (h *SlackHandler) handleSearch(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	decisions, err := h.decisionService.SearchDecisions(r.Context(), slashCmd.ChannelID, cmd.Text)
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral(formatSearchResults(decisions, cmd.Text))
}

func (h *SlackHandler) handleSummarize(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	summary, err := h.decisionService.Summarize(r.Context(), slashCmd.ChannelID, slashCmd.TeamID)
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral("🤖 *Decision Summary*\n\n" + summary)
}

func (h *SlackHandler) handleSuggest(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	suggestion, err := h.decisionService.Suggest(r.Context(), slashCmd.ChannelID, slashCmd.TeamID)
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral("🤖 *Suggested Next Steps*\n\n" + suggestion)
}

func (h *SlackHandler) handleConfig(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.ConfigShow {
		config, logs, err := h.decisionService.GetChannelConfig(r.Context(), slashCmd.ChannelID)
		if err != nil {
			return h.errorResponse(err)
		}
		return ephemeral(formatChannelConfig(config, logs))
	}

	value, err := strconv.Atoi(cmd.ConfigValue)
	if err != nil {
		return ephemeral(fmt.Sprintf("❌ Invalid value: `%s`. The value must be a number between 1 and 100.", cmd.ConfigValue))
	}

	config, err := h.decisionService.UpdateChannelConfig(r.Context(),
		slashCmd.ChannelID, cmd.ConfigKey, value, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.errorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("⚙️ *Channel configuration updated*\n\nApproval percentage is now *%d%%* (changed by %s).\n\nNew proposals will require %d%% of channel members to approve.",
			config.ApprovalPercentage, slashCmd.UserName, config.ApprovalPercentage),
	}
}

// voteErrorResponse adds the vote-specific guidance that the generic error
// mapping does not know about.
func (h *SlackHandler) voteErrorResponse(err error, decisionID int64) *slack.Msg {
	var alreadyVoted *domain.AlreadyVotedError
	if errors.As(err, &alreadyVoted) {
		return ephemeral(fmt.Sprintf(
			"❌ You already voted on this decision.\n\n*Your vote:* %s\n\n💡 Use `/decision myvote %d` to see your vote details.",
			strings.ToUpper(alreadyVoted.VoteType), decisionID))
	}

	var closed *domain.DecisionClosedError
	if errors.As(err, &closed) {
		return ephemeral(fmt.Sprintf(
			"❌ Decision #%d is already *%s*.\n\nYou can only vote on pending decisions.",
			decisionID, strings.ToUpper(closed.Status)))
	}

	return h.errorResponse(err)
}

func (h *SlackHandler) errorResponse(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrDecisionNotFound):
		return ephemeral("❌ Decision not found.\n\nUse `/decision list` to see available decisions.")
	case errors.Is(err, domain.ErrAILimitExceeded):
		return ephemeral("❌ Your organization reached its monthly AI usage limit. The counter resets on the 1st of next month.")
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return ephemeral("❌ " + validation.Message)
	}

	log.Printf("Command failed: %v", err)
	return ephemeral("❌ Something went wrong. Please try again.")
}

func ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}
