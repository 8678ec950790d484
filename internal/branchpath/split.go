package branchpath

import (
	"regexp"
	"strings"

	buildwayerrors "buildway.dev/buildway/internal/errors"
)

// invalidCharRegex matches characters that are not valid in artifact folder
// names. Delimiters are handled by the split itself.
var invalidCharRegex = regexp.MustCompile(`[<>:"|?*[:cntrl:]]`)

// Split parses a branch name into normalized path segments.
//
// Both "/" and "\" are accepted as delimiters, mixed use allowed. An empty
// input yields an empty slice, not an error. Splitting into more than
// maxSegments segments or producing a segment that case-insensitively matches
// an entry of forbidden is an error. Invalid filesystem characters are
// replaced with "-" and spaces with "_"; segment 0 is lower-cased, the rest
// upper-cased.
func Split(name string, maxSegments int, forbidden []string) ([]string, error) {
	if name == "" {
		return []string{}, nil
	}

	parts := strings.Split(strings.ReplaceAll(name, `\`, "/"), "/")
	if len(parts) > maxSegments {
		return nil, buildwayerrors.NewSegmentLimitError(name, len(parts), maxSegments)
	}

	segments := make([]string, len(parts))
	for i, part := range parts {
		for _, reserved := range forbidden {
			if strings.EqualFold(part, reserved) {
				return nil, buildwayerrors.NewForbiddenSegmentError(part)
			}
		}

		segment := invalidCharRegex.ReplaceAllString(part, "-")
		segment = strings.ReplaceAll(segment, " ", "_")
		if i == 0 {
			segment = strings.ToLower(segment)
		} else {
			segment = strings.ToUpper(segment)
		}
		segments[i] = segment
	}

	return segments, nil
}
