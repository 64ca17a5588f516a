package crm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/crypto"
	"github.com/diegoclair/slack-decision-bot/internal/domain"
	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

// Syncer implements contract.CRMSyncer. It creates or updates the Zoho
// record for a decision; sync failures never block voting, callers treat
// errors as log-and-continue.
type Syncer struct {
	dm           contract.DataManager
	cipher       *crypto.TokenCipher
	clientID     string
	clientSecret string
}

func NewSyncer(dm contract.DataManager, cipher *crypto.TokenCipher, clientID, clientSecret string) *Syncer {
	return &Syncer{
		dm:           dm,
		cipher:       cipher,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (s *Syncer) SyncDecision(ctx context.Context, decision *entity.Decision) error {
	if decision.CRMOrgID == "" {
		return nil
	}

	client, err := s.clientForOrg(decision.CRMOrgID)
	if err != nil {
		return err
	}

	record := mapDecisionRecord(decision)

	recordID, err := client.SearchDecisionByID(ctx, decision.ID)
	if err != nil {
		return fmt.Errorf("failed to search decision in crm: %w", err)
	}

	if recordID != "" {
		err = client.UpdateDecision(ctx, recordID, record)
	} else {
		err = client.CreateDecision(ctx, record)
	}
	if err != nil {
		return fmt.Errorf("failed to sync decision %d to crm: %w", decision.ID, err)
	}

	if err := s.dm.Decision().SetCRMSynced(decision.ID, true); err != nil {
		log.Printf("Failed to mark decision %d as synced: %v", decision.ID, err)
	}
	return nil
}

func (s *Syncer) clientForOrg(orgID string) (*Client, error) {
	install, err := s.dm.Installation().GetCRMByOrgID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load crm installation: %w", err)
	}
	if install == nil {
		return nil, domain.ErrNoInstallation
	}

	accessToken, err := s.cipher.Decrypt(install.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	refreshToken, err := s.cipher.Decrypt(install.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}

	return NewClient(orgID, install.CRMDomain, accessToken, refreshToken,
		install.TokenExpiresAt, s.clientID, s.clientSecret, &encryptingStore{
			dm:     s.dm,
			cipher: s.cipher,
		}), nil
}

// encryptingStore re-encrypts refreshed tokens before they hit the database.
type encryptingStore struct {
	dm     contract.DataManager
	cipher *crypto.TokenCipher
}

func (s *encryptingStore) UpdateTokens(orgID, accessToken, refreshToken string, expiresAt *time.Time) error {
	encAccess, err := s.cipher.Encrypt(accessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encRefresh, err := s.cipher.Encrypt(refreshToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}
	return s.dm.Installation().UpdateCRMTokens(orgID, encAccess, encRefresh, expiresAt)
}

func mapDecisionRecord(d *entity.Decision) map[string]any {
	text := d.Text
	if runes := []rune(text); len(runes) > 50 {
		text = string(runes[:50])
	}
	return map[string]any{
		"Name":             fmt.Sprintf("Decision #%d: %s", d.ID, text),
		"Decision_Id":      d.ID,
		"Decision":         d.Text,
		"Decision_By":      d.ProposerName,
		"Approve_Count":    d.ApprovalCount,
		"Reject_Count":     d.RejectionCount,
		"Total_Vote":       d.TotalVotes(),
		"Status":           mapStatus(d.Status),
		"Propose_Time":     d.CreatedAt.Format("2006-01-02T15:04:05"),
		"Zoho_Org_Id":      d.CRMOrgID,
		"Slack_Team_Id":    d.TeamID,
		"Slack_Channel_Id": d.ChannelID,
	}
}

func mapStatus(status string) string {
	switch status {
	case domain.StatusPending:
		return "Pending"
	case domain.StatusApproved:
		return "Approved"
	case domain.StatusRejected:
		return "Rejected"
	case domain.StatusExpired, domain.StatusExpiredNoConsensus, domain.StatusExpiredUnreachable:
		return "Expired"
	default:
		return "Pending"
	}
}
