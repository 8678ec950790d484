package branchpath

import (
	"strings"

	buildwayerrors "buildway.dev/buildway/internal/errors"
)

// Translate replaces segment 0 with its deployment channel.
//
// The lookup is case-insensitive; table keys are expected lowercase. On a hit
// the table value is substituted lower-cased. On a miss defaultTranslation is
// substituted verbatim, since it may be a sentinel such as "{nodeploy}" that
// must survive untouched. The input slice is not modified.
func Translate(segments []string, table map[string]string, defaultTranslation string) ([]string, error) {
	if len(segments) == 0 {
		return nil, buildwayerrors.NewNoSegmentsError()
	}

	translated := make([]string, len(segments))
	copy(translated, segments)

	if channel, ok := table[strings.ToLower(segments[0])]; ok {
		translated[0] = strings.ToLower(channel)
	} else {
		translated[0] = defaultTranslation
	}

	return translated, nil
}
