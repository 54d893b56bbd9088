package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Rewrite pasted text with ordered regex rules"
	MsgApplyShort   = "Apply the configured rules to input text"
	MsgRulesShort   = "Inspect and edit the rewrite rules"
	MsgListShort    = "List the configured rules"
	MsgAddShort     = "Append a pattern/replacer pair"
	MsgRemoveShort  = "Remove the rule at an index"
	MsgCheckShort   = "Verify that the stored rules compile"
	MsgConfigShort  = "Inspect the settings file"
	MsgPathShort    = "Print the settings file location"
	MsgShowShort    = "Print the effective settings"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgNoRules         = "No rules configured."
	MsgRuleAdded       = "Added rule %d: %s -> %s\n"
	MsgRuleRemoved     = "Removed rule %d\n"
	MsgRulesOK         = "%d rules compile cleanly.\n"
	MsgInertEntries    = "%d trailing entries have no partner and are ignored.\n"
	MsgEffectiveHeader = "Rules (applied in order):"
	MsgInertHeader     = "Inert trailing entries (never compiled):"

	// Flag descriptions
	MsgFlagPreview = "Render the rewritten text as markdown in the terminal"
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term or text"
)

// Templates
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
