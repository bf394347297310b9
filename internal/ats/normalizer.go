package ats

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
)

// recommendationMatchTimeout bounds the backtracking recommendation scan.
const recommendationMatchTimeout = 2 * time.Second

var (
	overallScorePattern = regexp.MustCompile(`(?i)OVERALL ATS COMPATIBILITY SCORE:\s*(\d+)`)

	// A category line is "<name>: <score> - <description>" on a single line.
	categoryPatterns = func() map[string]*regexp.Regexp {
		patterns := make(map[string]*regexp.Regexp, len(Categories))
		for _, cat := range Categories {
			patterns[cat] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(cat) + `:[ \t]*(\d+)[ \t]*-[ \t]*(.+)`)
		}
		return patterns
	}()

	// A numbered item runs until the next numbered line, the next line that
	// starts with a capital letter, or the end of the text.
	recommendationPattern = func() *regexp2.Regexp {
		re := regexp2.MustCompile(`(?:^|\n)\s*\d+\.\s*(.+?)(?=\n\d+\.|\n[A-Z]|\z)`, regexp2.Multiline|regexp2.Singleline)
		re.MatchTimeout = recommendationMatchTimeout
		return re
	}()
)

// ParseOutput normalizes a free-text ATS answer into a Report. It never fails:
// missing pieces are filled with defaults, and any internal error yields
// FallbackReport. Diagnostics go to the global logger.
func ParseOutput(raw string) Report {
	return parseOutput(raw, zap.L())
}

func parseOutput(raw string, logger *zap.Logger) Report {
	report, err := parse(raw, logger)
	if err != nil {
		logger.Error("failed to parse ATS output, using fallback report", zap.Error(err))
		return FallbackReport()
	}
	return report
}

func parse(text string, logger *zap.Logger) (report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while parsing ATS output: %v", r)
		}
	}()

	overall := DefaultOverallScore
	if m := overallScorePattern.FindStringSubmatch(text); m != nil {
		overall = parseScore(m[1])
	}

	breakdown := make([]CategoryScore, 0, len(Categories))
	for _, cat := range Categories {
		if score, desc, ok := findCategory(categoryPatterns[cat], text); ok {
			breakdown = append(breakdown, CategoryScore{
				Category:    cat,
				Score:       score,
				Description: desc,
			})
			continue
		}
		logger.Debug("no feedback for category", zap.String("category", cat))
		breakdown = append(breakdown, CategoryScore{
			Category:    cat,
			Score:       overall,
			Description: "No specific feedback found for " + cat,
		})
	}

	recs, err := findRecommendations(text)
	if err != nil {
		return Report{}, err
	}
	if len(recs) == 0 {
		recs = defaultRecommendations()
	}
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	return Report{
		OverallScore:    overall,
		Breakdown:       breakdown,
		Recommendations: recs,
	}, nil
}

// parseScore converts a run of digits into a score in [MinScore, MaxScore].
// Digit runs too long for an int are treated as over the maximum.
func parseScore(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		n = math.MaxInt
	}
	return clampScore(n)
}

// findCategory returns the first line for a category that carries a
// non-blank description.
func findCategory(re *regexp.Regexp, text string) (int, string, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if desc := strings.TrimSpace(m[2]); desc != "" {
			return parseScore(m[1]), desc, true
		}
	}
	return 0, "", false
}

func findRecommendations(text string) ([]string, error) {
	var recs []string

	m, err := recommendationPattern.FindStringMatch(text)
	for m != nil && err == nil {
		if item := strings.TrimSpace(m.GroupByNumber(1).String()); item != "" {
			recs = append(recs, item)
		}
		m, err = recommendationPattern.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan recommendations: %w", err)
	}

	return recs, nil
}
