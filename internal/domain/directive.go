package domain

import (
	"iter"
	"regexp"
	"strings"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// suppressionComment must match the whole trimmed line. The capture is greedy,
// so the selector runs to the last ')' on the line.
var suppressionComment = regexp.MustCompile(`^//\s*@suppressMutation\((.+)\)$`)

// parseSuppressionComment returns the directive a line produces, if any.
func parseSuppressionComment(line m.SourceLine) (m.SuppressionDirective, bool) {
	match := suppressionComment.FindStringSubmatch(strings.TrimSpace(line.Text))
	if match == nil {
		return m.SuppressionDirective{}, false
	}

	return m.SuppressionDirective{TargetLine: line.Number + 1, Selector: match[1]}, true
}

// ExtractDirectives collects the raw directives of one file, in line order.
// The first read error ends extraction and is returned as is.
func ExtractDirectives(lines iter.Seq2[m.SourceLine, error]) ([]m.SuppressionDirective, error) {
	var directives []m.SuppressionDirective

	for line, err := range lines {
		if err != nil {
			return nil, err
		}

		if d, ok := parseSuppressionComment(line); ok {
			directives = append(directives, d)
		}
	}

	return directives, nil
}
