package classifier

import (
	"regexp"
	"strings"

	"conversational-task-manager/internal/agent"
)

// UnknownConfidence is reported when no rule matches.
const UnknownConfidence = 0.45

// rule is one (patterns, intent, confidence) tuple. The first rule
// whose pattern set matches wins, so the rule order below is part of
// the contract: "undo completion" must hit the COMPLETE rule before a
// bare "complete" would, and "change X to Y" must hit UPDATE before
// DELETE's broad "remove" pattern ever sees it.
type rule struct {
	intent     agent.Intent
	confidence float64
	patterns   []*regexp.Regexp
}

func (r rule) matches(text string) bool {
	for _, p := range r.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

var rules = []rule{
	{
		intent:     agent.IntentCreate,
		confidence: 0.95,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(create|add|new)\s+(a\s+)?(\w+\s+)*task\b`),
			regexp.MustCompile(`\bremind\s+me\s+to\b`),
			regexp.MustCompile(`\b(make|add)\s+a\s+(new\s+)?(\w+\s+)?(task|todo|reminder)\b`),
		},
	},
	{
		intent:     agent.IntentList,
		confidence: 0.98,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(show|list|display|get|view)\s+(me\s+)?(my\s+)?(\w+\s+)*tasks?\b`),
			regexp.MustCompile(`\bwhat\s+(are\s+)?(my\s+)?tasks?\b`),
			regexp.MustCompile(`\b(see|check)\s+(my\s+)?(\w+\s+)*tasks?\b`),
		},
	},
	{
		intent:     agent.IntentComplete,
		confidence: 0.92,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(mark|set)\s+.*\s+as\s+(done|complete|finished)\b`),
			regexp.MustCompile(`\b(complete|finish|done)\s+`),
			regexp.MustCompile(`\bundo\s+(completion|complete)\b`),
		},
	},
	{
		intent:     agent.IntentUpdate,
		confidence: 0.89,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(change|update|modify|edit|rename)\s+.*\s+to\b`),
			regexp.MustCompile(`\bupdate\s+(task|the)\b`),
			regexp.MustCompile(`\brename\s+task\b`),
		},
	},
	{
		intent:     agent.IntentDelete,
		confidence: 0.91,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(delete|remove|get\s+rid\s+of)\s+`),
			regexp.MustCompile(`\bdelete\s+.*\s+task\b`),
		},
	},
}

// Classifier maps raw text to an intent by walking the fixed rule
// list in order. It holds no mutable state and is safe for concurrent
// use.
type Classifier struct{}

func New() Classifier {
	return Classifier{}
}

// Classify classifies text. Input is trimmed and lowercased first.
// When no rule matches, the verdict is UNKNOWN with a confidence
// under 0.5.
func (Classifier) Classify(text string) agent.Classification {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, r := range rules {
		if r.matches(normalized) {
			return agent.Classification{Intent: r.intent, Confidence: r.confidence}
		}
	}

	return agent.Classification{Intent: agent.IntentUnknown, Confidence: UnknownConfidence}
}
