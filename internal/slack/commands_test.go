package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_Actions(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAction Action
		wantValid  bool
	}{
		{"propose", `propose "Should we order pizza?"`, ActionPropose, true},
		{"propose alias proposal", `proposal "Should we order pizza?"`, ActionPropose, true},
		{"approve", "approve 42", ActionApprove, true},
		{"approve alias approved", "approved 42", ActionApprove, true},
		{"approve alias approves", "approves 42", ActionApprove, true},
		{"approve alias approving", "approving 42", ActionApprove, true},
		{"reject", "reject 42", ActionReject, true},
		{"reject alias rejected", "rejected 42", ActionReject, true},
		{"reject alias rejects", "rejects 42", ActionReject, true},
		{"add", `add "We use Go for backend services"`, ActionAdd, true},
		{"list", "list", ActionList, true},
		{"list alias ls", "ls", ActionList, true},
		{"search", `search "pizza"`, ActionSearch, true},
		{"search alias find", `find "pizza"`, ActionSearch, true},
		{"show", "show 7", ActionShow, true},
		{"show alias details", "details 7", ActionShow, true},
		{"myvote", "myvote 7", ActionMyVote, true},
		{"myvote alias vote", "vote 7", ActionMyVote, true},
		{"summarize", "summarize", ActionSummarize, true},
		{"summarize alias summary", "summary", ActionSummarize, true},
		{"suggest", "suggest", ActionSuggest, true},
		{"config", "config show", ActionConfig, true},
		{"config alias settings", "settings show", ActionConfig, true},
		{"help", "help", ActionHelp, true},
		{"help alias question mark", "?", ActionHelp, true},
		{"case insensitive action", "APPROVE 42", ActionApprove, true},
		{"unknown action", "dance 42", ActionUnknown, false},
		{"empty input", "", ActionUnknown, false},
		{"whitespace only", "   ", ActionUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.wantAction, cmd.Action)
			assert.Equal(t, tt.wantValid, cmd.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, cmd.ErrMsg)
			}
		})
	}
}

func TestParseCommand_QuotedText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantText string
	}{
		{"double quotes", `propose "Should we order pizza?"`, "Should we order pizza?"},
		{"single quotes", `propose 'Should we order pizza?'`, "Should we order pizza?"},
		{"double quotes preferred over single", `propose "double" 'single'`, "double"},
		{"escaped double quote inside", `propose "He said \"yes\" twice"`, `He said "yes" twice`},
		{"surrounding whitespace trimmed", `propose "  padded text  "`, "padded text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			require.True(t, cmd.Valid, "errmsg: %s", cmd.ErrMsg)
			assert.Equal(t, tt.wantText, cmd.Text)
		})
	}

	t.Run("propose without quotes is invalid", func(t *testing.T) {
		cmd := ParseCommand("propose Should we order pizza")
		assert.False(t, cmd.Valid)
		assert.Contains(t, cmd.ErrMsg, "quoted")
	})
}

func TestParseCommand_IDExtraction(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID int64
	}{
		{"bare id", "approve 42", 42},
		{"id with hash prefix", "approve #42", 42},
		{"id among words", "approve decision 42 please", 42},
		{"first digits run wins", "show 7 and 9", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			require.True(t, cmd.Valid, "errmsg: %s", cmd.ErrMsg)
			assert.Equal(t, tt.wantID, cmd.ID)
		})
	}

	t.Run("missing id is invalid", func(t *testing.T) {
		cmd := ParseCommand("approve")
		assert.False(t, cmd.Valid)
		assert.Contains(t, cmd.ErrMsg, "decision ID")
	})
}

func TestParseCommand_AnonymousFlags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantAnon bool
	}{
		{"long flag", "approve 42 --anonymous", true},
		{"anon alias", "approve 42 --anon", true},
		{"short flag", "approve 42 -a", true},
		{"no flag", "approve 42", false},
		{"unrelated flag", "approve 42 --verbose", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			require.True(t, cmd.Valid)
			assert.Equal(t, tt.wantAnon, cmd.Anonymous())
		})
	}
}

func TestParseCommand_ListArgs(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus string
		wantPage   int
		wantValid  bool
	}{
		{"bare list", "list", "", 1, true},
		{"status filter", "list pending", "pending", 1, true},
		{"status all keeps no filter", "list all", "", 1, true},
		{"status and page", "list approved 3", "approved", 3, true},
		{"bare number is a page", "list 2", "", 2, true},
		{"uppercase status", "list PENDING", "pending", 1, true},
		{"bad filter", "list bananas", "", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			assert.Equal(t, tt.wantValid, cmd.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantStatus, cmd.Status)
				assert.Equal(t, tt.wantPage, cmd.Page)
			}
		})
	}
}

func TestParseCommand_ConfigArgs(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantShow  bool
		wantKey   string
		wantValue string
		wantValid bool
	}{
		{"show", "config show", true, "", "", true},
		{"set keyword", "config set approval_percentage 70", false, "approval_percentage", "70", true},
		{"without set keyword", "config approval_percentage 70", false, "approval_percentage", "70", true},
		{"equals form", "config approval_percentage=70", false, "approval_percentage", "70", true},
		{"percent sign stripped", "config set percentage 70%", false, "approval_percentage", "70", true},
		{"key alias approval", "config approval 55", false, "approval_percentage", "55", true},
		{"unknown key", "config set timeout 3", false, "", "", false},
		{"no args", "config", false, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			assert.Equal(t, tt.wantValid, cmd.Valid)
			if !tt.wantValid {
				return
			}
			assert.Equal(t, tt.wantShow, cmd.ConfigShow)
			assert.Equal(t, tt.wantKey, cmd.ConfigKey)
			assert.Equal(t, tt.wantValue, cmd.ConfigValue)
		})
	}
}

func TestParseCommand_NeverPanics(t *testing.T) {
	inputs := []string{
		"", " ", `"""`, "''", "--", "-", "config =", "config ==x",
		"approve 99999999999999999999999999",
		"propose \"unterminated",
		"list -1",
	}
	for _, input := range inputs {
		cmd := ParseCommand(input)
		require.NotNil(t, cmd, "input %q", input)
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	for _, want := range []string{"propose", "approve", "reject", "list", "search", "myvote", "config", "anonymous"} {
		assert.Contains(t, help, want)
	}
}
