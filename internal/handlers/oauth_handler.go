package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/crypto"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
)

// stateTTL is how long an issued OAuth state stays valid.
const stateTTL = 10 * time.Minute

// OAuthHandler runs the Slack workspace install flow and the Zoho CRM
// connect callback. OAuth tokens are encrypted before hitting the database.
type OAuthHandler struct {
	dm         contract.DataManager
	cipher     *crypto.TokenCipher
	clientID   string
	secret     string
	appBaseURL string

	mu     sync.Mutex
	states map[string]time.Time
}

func NewOAuth(dm contract.DataManager, cipher *crypto.TokenCipher, clientID, clientSecret, appBaseURL string) *OAuthHandler {
	return &OAuthHandler{
		dm:         dm,
		cipher:     cipher,
		clientID:   clientID,
		secret:     clientSecret,
		appBaseURL: appBaseURL,
		states:     map[string]time.Time{},
	}
}

// HandleInstall redirects the browser to Slack's consent page with a
// one-time state token.
func (h *OAuthHandler) HandleInstall(w http.ResponseWriter, r *http.Request) {
	state := h.issueState()

	params := url.Values{
		"client_id":    {h.clientID},
		"scope":        {"commands,chat:write,channels:read,users:read,groups:read"},
		"state":        {state},
		"redirect_uri": {h.appBaseURL + "/slack/install/callback"},
	}

	http.Redirect(w, r, "https://slack.com/oauth/v2/authorize?"+params.Encode(), http.StatusFound)
}

// HandleInstallCallback exchanges the temporary code for a bot token and
// stores the workspace installation.
func (h *OAuthHandler) HandleInstallCallback(w http.ResponseWriter, r *http.Request) {
	if !h.consumeState(r.URL.Query().Get("state")) {
		http.Error(w, "invalid or expired state", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	resp, err := slack.GetOAuthV2ResponseContext(r.Context(), http.DefaultClient,
		h.clientID, h.secret, code, h.appBaseURL+"/slack/install/callback")
	if err != nil {
		log.Printf("Slack OAuth exchange failed: %v", err)
		http.Error(w, "oauth exchange failed", http.StatusBadGateway)
		return
	}

	encToken, err := h.cipher.Encrypt(resp.AccessToken)
	if err != nil {
		log.Printf("Failed to encrypt bot token: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	install := &entity.SlackInstallation{
		TeamID:      resp.Team.ID,
		TeamName:    resp.Team.Name,
		AccessToken: encToken,
		BotUserID:   resp.BotUserID,
		InstalledAt: time.Now().UTC(),
	}
	if err := h.dm.Installation().UpsertSlack(install); err != nil {
		log.Printf("Failed to store slack installation: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Printf("Installed to workspace %s (%s)", resp.Team.Name, resp.Team.ID)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html><body><h2>✅ Installed to %s</h2><p>You can close this window and run <code>/decision help</code> in Slack.</p></body></html>", resp.Team.Name)
}

// HandleCRMCallback stores the Zoho tokens delivered after the user
// authorizes the CRM connection. The CRM side performs the code exchange
// and posts the resulting grant here.
func (h *OAuthHandler) HandleCRMCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	orgID := r.Form.Get("org_id")
	accessToken := r.Form.Get("access_token")
	refreshToken := r.Form.Get("refresh_token")
	domain := r.Form.Get("domain")
	teamID := r.Form.Get("team_id")
	installedBy := r.Form.Get("installed_by")

	if orgID == "" || refreshToken == "" {
		http.Error(w, "missing org_id or refresh_token", http.StatusBadRequest)
		return
	}

	encAccess, err := h.cipher.Encrypt(accessToken)
	if err != nil {
		log.Printf("Failed to encrypt access token: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	encRefresh, err := h.cipher.Encrypt(refreshToken)
	if err != nil {
		log.Printf("Failed to encrypt refresh token: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var expiresAt *time.Time
	if expiresIn := r.Form.Get("expires_in"); expiresIn != "" {
		if d, err := time.ParseDuration(expiresIn + "s"); err == nil {
			t := time.Now().UTC().Add(d)
			expiresAt = &t
		}
	}

	err = h.dm.WithTransaction(r.Context(), func(dm contract.DataManager) error {
		install := &entity.CRMInstallation{
			CRMOrgID:       orgID,
			CRMDomain:      domain,
			AccessToken:    encAccess,
			RefreshToken:   encRefresh,
			TokenExpiresAt: expiresAt,
			InstalledAt:    time.Now().UTC(),
			InstalledBy:    installedBy,
		}
		if err := dm.Installation().UpsertCRM(install); err != nil {
			return err
		}

		// Link an already-installed workspace to this organization.
		if teamID != "" {
			slackInstall, err := dm.Installation().GetSlackByTeamID(teamID)
			if err != nil {
				return err
			}
			if slackInstall != nil {
				slackInstall.CRMOrgID = orgID
				return dm.Installation().UpsertSlack(slackInstall)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Failed to store crm installation: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Printf("Connected CRM organization %s", orgID)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<html><body><h2>✅ CRM connected</h2><p>Decisions will now sync to your CRM.</p></body></html>")
}

// HandleCRMUninstall removes a tenant and everything under it.
func (h *OAuthHandler) HandleCRMUninstall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID := r.URL.Query().Get("org_id")
	if orgID == "" {
		http.Error(w, "missing org_id", http.StatusBadRequest)
		return
	}

	err := h.dm.WithTransaction(r.Context(), func(dm contract.DataManager) error {
		return dm.Installation().DeleteCRM(orgID)
	})
	if err != nil {
		log.Printf("Failed to delete crm installation %s: %v", orgID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

func (h *OAuthHandler) issueState() string {
	state := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()

	// Drop expired states while we hold the lock.
	now := time.Now()
	for s, issued := range h.states {
		if now.Sub(issued) > stateTTL {
			delete(h.states, s)
		}
	}
	h.states[state] = now
	return state
}

func (h *OAuthHandler) consumeState(state string) bool {
	if state == "" {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	issued, ok := h.states[state]
	if !ok {
		return false
	}
	delete(h.states, state)
	return time.Since(issued) <= stateTTL
}
