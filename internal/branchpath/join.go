package branchpath

import "path"

// Join merges segments with positional overrides and appended segments into
// one path string.
//
// Precedence rules, in order:
//  1. Extra override slots beyond len(segments) extend the output only when
//     at least one of them carries content; trailing empty slots are ignored.
//  2. At each position a non-empty override wins over the base segment.
//  3. Append values go to the end unconditionally and bypass override logic.
//  4. Elements are joined with hierarchical path semantics; empty elements
//     and redundant separators are normalized away.
//
// Override values are caller-controlled literals and are never re-sanitized.
// Empty segments yield an empty string, matching Split's empty-input contract.
func Join(segments, overrides, appendSegments []string) string {
	if len(segments) == 0 {
		return ""
	}

	length := len(segments)
	if len(overrides) > length {
		for _, extra := range overrides[length:] {
			if extra != "" {
				length = len(overrides)
				break
			}
		}
	}

	parts := make([]string, 0, length+len(appendSegments))
	for i := 0; i < length; i++ {
		value := ""
		if i < len(segments) {
			value = segments[i]
		}
		if i < len(overrides) && overrides[i] != "" {
			value = overrides[i]
		}
		parts = append(parts, value)
	}
	parts = append(parts, appendSegments...)

	return path.Join(parts...)
}
