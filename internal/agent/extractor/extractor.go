package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"conversational-task-manager/internal/agent"
	"conversational-task-manager/internal/model"
	"conversational-task-manager/pkg/datemath"
)

var (
	remindTitlePattern = regexp.MustCompile(`remind\s+me\s+to\s+(.+)`)
	createTitlePattern = regexp.MustCompile(`(?:create|add|new)\s+(?:a\s+)?task\s+(?:to\s+)?(.+)`)
	trailingPunct      = regexp.MustCompile(`[.!?]+$`)

	highPriorityPattern   = regexp.MustCompile(`\bhigh\s+priority\b|\burgent\b`)
	mediumPriorityPattern = regexp.MustCompile(`\bmedium\s+priority\b`)
	lowPriorityPattern    = regexp.MustCompile(`\blow\s+priority\b`)

	descriptionPattern = regexp.MustCompile(`with\s+(.+)`)

	incompletePattern = regexp.MustCompile(`\b(left|incomplete|not\s+done|pending)\b`)
	completedPattern  = regexp.MustCompile(`\b(completed|done|finished)\b`)

	taskIDPattern      = regexp.MustCompile(`task\s+(\d+)`)
	quotedPattern      = regexp.MustCompile(`['"]([^'"]+)['"]`)
	markTargetPattern  = regexp.MustCompile(`(?:mark|complete|finish)\s+(.+?)\s+as`)
	undoPattern        = regexp.MustCompile(`\bundo\b`)
	quotedRename       = regexp.MustCompile(`['"]([^'"]+)['"]\s+to\s+['"]([^'"]+)['"]`)
	bareRename         = regexp.MustCompile(`(?:change|update|rename)\s+(.+?)\s+to\s+(.+)`)
	newDescPattern     = regexp.MustCompile(`description\s+to\s+(.+)`)
	deleteTargetSuffix = regexp.MustCompile(`(?:delete|remove)\s+(.+)$`)
)

// Extractor pulls structured fields out of a message for a classified
// intent. Pure string work: it never consults storage.
type Extractor struct {
	dates *datemath.Parser
}

// New builds an Extractor. The timezone governs how relative due-date
// expressions resolve to instants.
func New(timezone string) (Extractor, error) {
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		return Extractor{}, err
	}
	return Extractor{dates: dates}, nil
}

// Extract dispatches to the intent-specific routine. UNKNOWN yields
// empty parameters.
func (e Extractor) Extract(text string, intent agent.Intent) agent.Params {
	switch intent {
	case agent.IntentCreate:
		return e.extractCreate(text)
	case agent.IntentList:
		return e.extractList(text)
	case agent.IntentComplete:
		return e.extractComplete(text)
	case agent.IntentUpdate:
		return e.extractUpdate(text)
	case agent.IntentDelete:
		return e.extractDelete(text)
	}
	return agent.Params{}
}

func (e Extractor) extractCreate(text string) agent.Params {
	lower := strings.ToLower(strings.TrimSpace(text))

	var title string
	if m := remindTitlePattern.FindStringSubmatch(lower); m != nil {
		title = m[1]
	} else if m := createTitlePattern.FindStringSubmatch(lower); m != nil {
		title = m[1]
	} else {
		title = lower
	}
	title = trailingPunct.ReplaceAllString(strings.TrimSpace(title), "")

	params := agent.Params{Priority: detectPriority(lower)}

	if m := descriptionPattern.FindStringSubmatch(lower); m != nil {
		params.Description = strings.TrimSpace(m[1])
	}

	if hint, ok := datemath.FindHint(title); ok {
		if due, err := e.dates.Parse(hint, time.Now()); err == nil {
			params.DueDate = &due
			title = datemath.StripHint(title)
		}
	}

	params.Title = title
	return params
}

func (e Extractor) extractList(text string) agent.Params {
	lower := strings.ToLower(strings.TrimSpace(text))

	params := agent.Params{PriorityFilter: detectPriority(lower)}

	// "left"/"pending" style words are checked before "done" words so
	// that "not done" lands on the incomplete filter.
	if incompletePattern.MatchString(lower) {
		f := false
		params.CompletedFilter = &f
	} else if completedPattern.MatchString(lower) {
		f := true
		params.CompletedFilter = &f
	}

	return params
}

func (e Extractor) extractComplete(text string) agent.Params {
	lower := strings.ToLower(strings.TrimSpace(text))

	params := agent.Params{
		Completed: !undoPattern.MatchString(lower),
		Target:    detectTarget(text, lower, markTargetPattern),
	}
	return params
}

func (e Extractor) extractUpdate(text string) agent.Params {
	lower := strings.ToLower(strings.TrimSpace(text))

	var params agent.Params

	if m := quotedRename.FindStringSubmatch(text); m != nil {
		params.Target = &agent.TargetRef{Kind: agent.TargetTitleFragment, Fragment: m[1]}
		params.NewTitle = m[2]
	} else if m := bareRename.FindStringSubmatch(lower); m != nil {
		params.Target = &agent.TargetRef{Kind: agent.TargetTitleFragment, Fragment: strings.TrimSpace(m[1])}
		params.NewTitle = strings.TrimSpace(m[2])
	}

	if m := newDescPattern.FindStringSubmatch(lower); m != nil {
		params.NewDescription = strings.TrimSpace(m[1])
		// "change the description to X" names no new title; the
		// rename pattern mistakes the literal word "description" for
		// a title fragment in that phrasing.
		if params.Target != nil && strings.HasSuffix(params.Target.Fragment, "description") {
			params.Target = nil
			params.NewTitle = ""
		}
	}

	// A numeric id trumps any co-occurring title fragment.
	if id, ok := findTaskID(lower); ok {
		params.Target = &agent.TargetRef{Kind: agent.TargetID, ID: id}
	}

	return params
}

func (e Extractor) extractDelete(text string) agent.Params {
	lower := strings.ToLower(strings.TrimSpace(text))

	var params agent.Params

	if m := quotedPattern.FindStringSubmatch(text); m != nil {
		params.Target = &agent.TargetRef{Kind: agent.TargetTitleFragment, Fragment: m[1]}
	} else if m := deleteTargetSuffix.FindStringSubmatch(lower); m != nil {
		fragment := strings.TrimSpace(m[1])
		// Shed leading "the"/"task" articles in any order.
		for {
			if rest, ok := strings.CutPrefix(fragment, "the "); ok {
				fragment = strings.TrimSpace(rest)
				continue
			}
			if rest, ok := strings.CutPrefix(fragment, "task "); ok {
				fragment = strings.TrimSpace(rest)
				continue
			}
			break
		}
		if fragment != "" {
			params.Target = &agent.TargetRef{Kind: agent.TargetTitleFragment, Fragment: fragment}
		}
	}

	if id, ok := findTaskID(lower); ok {
		params.Target = &agent.TargetRef{Kind: agent.TargetID, ID: id}
	}

	return params
}

// detectTarget finds the task a message points at: quoted title,
// fall-back pattern match, with a numeric id overriding either.
func detectTarget(original, lower string, fallback *regexp.Regexp) *agent.TargetRef {
	var target *agent.TargetRef

	if m := quotedPattern.FindStringSubmatch(original); m != nil {
		target = &agent.TargetRef{Kind: agent.TargetTitleFragment, Fragment: m[1]}
	} else if m := fallback.FindStringSubmatch(lower); m != nil {
		target = &agent.TargetRef{Kind: agent.TargetTitleFragment, Fragment: strings.TrimSpace(m[1])}
	}

	if id, ok := findTaskID(lower); ok {
		target = &agent.TargetRef{Kind: agent.TargetID, ID: id}
	}

	return target
}

func findTaskID(lower string) (int64, bool) {
	m := taskIDPattern.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func detectPriority(lower string) model.Priority {
	switch {
	case highPriorityPattern.MatchString(lower):
		return model.PriorityHigh
	case mediumPriorityPattern.MatchString(lower):
		return model.PriorityMedium
	case lowPriorityPattern.MatchString(lower):
		return model.PriorityLow
	}
	return ""
}
