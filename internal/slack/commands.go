package slack

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type Action string

const (
	ActionPropose   Action = "propose"
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionAdd       Action = "add"
	ActionList      Action = "list"
	ActionSearch    Action = "search"
	ActionShow      Action = "show"
	ActionMyVote    Action = "myvote"
	ActionSummarize Action = "summarize"
	ActionSuggest   Action = "suggest"
	ActionConfig    Action = "config"
	ActionHelp      Action = "help"
	ActionUnknown   Action = "unknown"
)

// actionAliases maps inflected or alternate spellings to canonical actions.
var actionAliases = map[string]Action{
	"propose":   ActionPropose,
	"proposal":  ActionPropose,
	"approve":   ActionApprove,
	"approved":  ActionApprove,
	"approves":  ActionApprove,
	"approving": ActionApprove,
	"reject":    ActionReject,
	"rejected":  ActionReject,
	"rejects":   ActionReject,
	"add":       ActionAdd,
	"list":      ActionList,
	"ls":        ActionList,
	"search":    ActionSearch,
	"find":      ActionSearch,
	"show":      ActionShow,
	"detail":    ActionShow,
	"details":   ActionShow,
	"myvote":    ActionMyVote,
	"vote":      ActionMyVote,
	"summarize": ActionSummarize,
	"summary":   ActionSummarize,
	"suggest":   ActionSuggest,
	"config":    ActionConfig,
	"configure": ActionConfig,
	"settings":  ActionConfig,
	"help":      ActionHelp,
	"h":         ActionHelp,
	"?":         ActionHelp,
}

// configKeyAliases restricts config keys to a closed set.
var configKeyAliases = map[string]string{
	"approval_percentage": "approval_percentage",
	"percentage":          "approval_percentage",
	"approval":            "approval_percentage",
}

var (
	doubleQuotedRe = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
	singleQuotedRe = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'`)
	numericIDRe    = regexp.MustCompile(`\b(\d+)\b`)
	longFlagRe     = regexp.MustCompile(`--(\w+)`)
	shortFlagRe    = regexp.MustCompile(`\s-([a-zA-Z])\b`)
)

// Command is the structured result of parsing slash command text. The
// parser only classifies; it never executes side effects and never fails
// with an error: malformed input yields Valid=false and a user-facing
// ErrMsg with an example.
type Command struct {
	Action      Action
	Text        string // quoted payload for propose/add/search
	ID          int64  // decision id for approve/reject/show/myvote
	Status      string // status filter for list ("" means all)
	Page        int    // page number for list, 1-based
	ConfigKey   string
	ConfigValue string
	ConfigShow  bool
	Flags       map[string]bool
	Raw         string
	Valid       bool
	ErrMsg      string
}

// Anonymous reports whether any of the anonymity flag aliases was given.
func (c *Command) Anonymous() bool {
	return c.Flags["anonymous"]
}

func invalid(action Action, raw, format string, args ...any) *Command {
	return &Command{
		Action: action,
		Raw:    raw,
		Flags:  map[string]bool{},
		Valid:  false,
		ErrMsg: fmt.Sprintf(format, args...),
	}
}

// ParseCommand parses the free text after the slash command into a Command.
func ParseCommand(text string) *Command {
	raw := text
	text = strings.TrimSpace(text)

	if text == "" {
		return invalid(ActionUnknown, raw, "Empty command. Try `help` to see what I can do.")
	}

	flags := parseFlags(text)
	stripped := stripFlags(text)

	parts := strings.Fields(stripped)
	if len(parts) == 0 {
		return invalid(ActionUnknown, raw, "No command found. Try `help` to see what I can do.")
	}

	actionWord := strings.ToLower(parts[0])
	remaining := strings.TrimSpace(strings.TrimPrefix(stripped, parts[0]))

	action, ok := actionAliases[actionWord]
	if !ok {
		return invalid(ActionUnknown, raw,
			"Unknown action: `%s`. Valid: propose, approve, reject, add, list, search, show, myvote, summarize, suggest, config, help", actionWord)
	}

	cmd := &Command{
		Action: action,
		Page:   1,
		Flags:  flags,
		Raw:    raw,
		Valid:  true,
	}

	switch action {
	case ActionPropose, ActionAdd:
		quoted, found := extractQuoted(remaining)
		if !found {
			return invalid(action, raw,
				"%s requires quoted text. Example: %s \"Should we order pizza?\"", titleWord(action), action)
		}
		cmd.Text = quoted

	case ActionApprove, ActionReject, ActionShow, ActionMyVote:
		id, found := extractID(remaining)
		if !found {
			return invalid(action, raw,
				"%s requires a decision ID. Example: %s 42", titleWord(action), action)
		}
		cmd.ID = id

	case ActionSearch:
		if quoted, found := extractQuoted(remaining); found {
			cmd.Text = quoted
		} else if remaining != "" {
			cmd.Text = strings.TrimSpace(remaining)
		} else {
			return invalid(action, raw, `Search requires a keyword. Example: search "pizza"`)
		}

	case ActionList:
		if err := parseListArgs(cmd, remaining); err != "" {
			return invalid(action, raw, "%s", err)
		}

	case ActionConfig:
		if err := parseConfigArgs(cmd, remaining); err != "" {
			return invalid(action, raw, "%s", err)
		}

	case ActionSummarize, ActionSuggest, ActionHelp:
		// no arguments
	}

	return cmd
}

func titleWord(action Action) string {
	s := string(action)
	return strings.ToUpper(s[:1]) + s[1:]
}

// extractQuoted returns the content of the first double-quoted run, or
// failing that the first single-quoted run, with backslash-escaped quotes
// unescaped.
func extractQuoted(text string) (string, bool) {
	if m := doubleQuotedRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(unescapeQuotes(m[1])), true
	}
	if m := singleQuotedRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(unescapeQuotes(m[1])), true
	}
	return "", false
}

func unescapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\'`, `'`)
	return s
}

// extractID takes the first run of digits found anywhere in the text.
func extractID(text string) (int64, bool) {
	m := numericIDRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseFlags recognizes long-form (--flag) and short-form (-a) tokens.
// The anonymity aliases collapse into a single "anonymous" flag;
// unrecognized flags are preserved verbatim.
func parseFlags(text string) map[string]bool {
	flags := map[string]bool{}

	for _, m := range longFlagRe.FindAllStringSubmatch(text, -1) {
		name := strings.ToLower(m[1])
		if name == "anonymous" || name == "anon" {
			flags["anonymous"] = true
		} else {
			flags[name] = true
		}
	}

	for _, m := range shortFlagRe.FindAllStringSubmatch(text, -1) {
		ch := strings.ToLower(m[1])
		if ch == "a" {
			flags["anonymous"] = true
		} else {
			flags[ch] = true
		}
	}

	return flags
}

func stripFlags(text string) string {
	text = longFlagRe.ReplaceAllString(text, "")
	text = shortFlagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

var listStatuses = map[string]bool{
	"pending":  true,
	"approved": true,
	"rejected": true,
	"expired":  true,
}

// parseListArgs handles `list [all|pending|approved|rejected|expired] [page]`.
// A bare number is treated as a page of the unfiltered list.
func parseListArgs(cmd *Command, remaining string) string {
	fields := strings.Fields(strings.ToLower(remaining))
	if len(fields) == 0 {
		return ""
	}

	first := fields[0]
	rest := fields[1:]

	switch {
	case first == "all" || first == "any":
		// unfiltered
	case listStatuses[first]:
		cmd.Status = first
	default:
		page, err := strconv.Atoi(first)
		if err != nil {
			return fmt.Sprintf("Invalid status filter or page number: `%s`. Use: all, pending, approved, rejected, expired, or a page number.", first)
		}
		if page >= 1 {
			cmd.Page = page
		}
		return ""
	}

	if len(rest) > 0 {
		if page, err := strconv.Atoi(rest[0]); err == nil && page >= 1 {
			cmd.Page = page
		}
	}
	return ""
}

// parseConfigArgs handles the three accepted shapes:
// `config show`, `config [set] <key> <value>` and `config <key>=<value>`.
func parseConfigArgs(cmd *Command, remaining string) string {
	fields := strings.Fields(remaining)
	if len(fields) == 0 {
		return "Config requires arguments. Example: `config show` or `config set approval_percentage 70`"
	}

	if strings.EqualFold(fields[0], "show") {
		cmd.ConfigShow = true
		return ""
	}

	// set keyword is optional
	if strings.EqualFold(fields[0], "set") {
		fields = fields[1:]
	}

	var key, value string
	switch {
	case len(fields) == 1 && strings.Contains(fields[0], "="):
		kv := strings.SplitN(fields[0], "=", 2)
		key, value = kv[0], kv[1]
	case len(fields) >= 2:
		key, value = fields[0], fields[1]
	default:
		return "Config requires a key and a value. Example: `config set approval_percentage 70`"
	}

	canonical, ok := configKeyAliases[strings.ToLower(key)]
	if !ok {
		return fmt.Sprintf("Unknown setting: `%s`. Valid settings: approval_percentage", key)
	}

	cmd.ConfigKey = canonical
	cmd.ConfigValue = strings.TrimSuffix(strings.TrimSpace(value), "%")
	return ""
}

// GetHelpText returns the command reference shown for `help`.
func GetHelpText() string {
	return `📚 *Decision Bot - Command Reference*

*Creating Proposals:*
• ` + "`/decision propose \"Your proposal text\"`" + ` - Create a new decision
• ` + "`/decision add \"Decision text\"`" + ` - Record a pre-approved decision

*Voting:*
• ` + "`/decision approve <id>`" + ` - Vote to approve
• ` + "`/decision reject <id>`" + ` - Vote to reject
• ` + "`/decision approve <id> --anonymous`" + ` - Vote anonymously (also --anon or -a)
• ` + "`/decision myvote <id>`" + ` - Check your vote on a decision

*Viewing Decisions:*
• ` + "`/decision list`" + ` - List decisions in this channel
• ` + "`/decision list pending`" + ` - Filter by status (pending, approved, rejected, expired)
• ` + "`/decision show <id>`" + ` - View decision details with votes
• ` + "`/decision search \"keyword\"`" + ` - Search decisions

*Analysis:*
• ` + "`/decision summarize`" + ` - AI summary of this channel's decisions
• ` + "`/decision suggest`" + ` - AI next-step suggestions

*Configuration:*
• ` + "`/decision config show`" + ` - Show channel settings
• ` + "`/decision config set approval_percentage 70`" + ` - Require 70% approvals

*Privacy:*
🔒 Anonymous votes hide your identity from others, but you can always check your own vote with ` + "`myvote`" + `.`
}
