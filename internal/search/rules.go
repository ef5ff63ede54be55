// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================================
// CANNED RESPONSES
// ============================================================================

const (
	weatherResponse = "Based on current weather data, temperatures are moderate with partly cloudy skies in most major cities today."

	newsResponse = "Recent developments include advances in AI technology, economic updates, and various global events. For the most current information, I'd recommend checking reputable news sources."

	techResponse = "The latest in technology includes developments in artificial intelligence, quantum computing, and renewable energy innovations."

	defaultResponseFormat = "I found several relevant sources about \"%s\". Here's what I discovered: This topic involves multiple aspects that are currently being discussed across various platforms. For the most accurate and up-to-date information, I'd recommend checking recent sources directly."
)

// Rule names.
const (
	RuleWeather = "weather"
	RuleNews    = "news"
	RuleTech    = "tech"
	RuleDefault = "default"
)

// placeholderSources are attached to every answer.
var placeholderSources = []string{
	"web-search-result-1.com",
	"reliable-source-2.org",
	"current-info-3.net",
}

// PlaceholderSources returns the citation labels attached to answers.
func PlaceholderSources() []string {
	return append([]string(nil), placeholderSources...)
}

// ============================================================================
// RULE TABLE
// ============================================================================

// Rule maps a keyword to a canned answer. A rule with an empty Keyword
// matches every query.
type Rule struct {
	Name    string
	Keyword string

	respond func(query string) string
}

// Respond returns the answer this rule gives for query.
func (r Rule) Respond(query string) string {
	if r.respond == nil {
		return ""
	}
	return r.respond(query)
}

// Matches reports whether the rule applies to query. Matching is a
// case-insensitive substring test using Unicode case folding.
func (r Rule) Matches(query string) bool {
	if r.Keyword == "" {
		return true
	}
	return strings.Contains(fold(query), fold(r.Keyword))
}

func fixed(answer string) func(string) string {
	return func(string) string { return answer }
}

// Order matters: the first matching rule wins.
var rules = []Rule{
	{Name: RuleWeather, Keyword: "weather", respond: fixed(weatherResponse)},
	{Name: RuleNews, Keyword: "news", respond: fixed(newsResponse)},
	{Name: RuleTech, Keyword: "tech", respond: fixed(techResponse)},
	{Name: RuleDefault, respond: func(query string) string {
		return fmt.Sprintf(defaultResponseFormat, query)
	}},
}

// Rules returns the ordered rule table.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Match returns the first rule that applies to query. The last rule matches
// everything, so Match always returns a rule.
func Match(query string) Rule {
	folded := fold(query)
	for _, r := range rules {
		if r.Keyword == "" || strings.Contains(folded, fold(r.Keyword)) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Answer resolves query against the rule table without any delay.
func Answer(query string) Result {
	r := Match(query)
	return Result{
		Content: r.Respond(query),
		Sources: PlaceholderSources(),
		Rule:    r.Name,
	}
}

// fold lowercases s with the root locale's Unicode mapping. Only upper and
// title case letters change, so forms such as the long s stay distinct.
// A Caser keeps state, so one is built per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
