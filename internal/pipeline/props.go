package pipeline

import (
	"strconv"
	"strings"

	"buildway.dev/buildway/internal/branchpath"
	"buildway.dev/buildway/internal/buildver"
)

// Properties are the named values step command lines may reference with
// {name} placeholders.
type Properties map[string]string

// NewProperties builds the property set for one derivation result
func NewProperties(branch string, quad buildver.Quad, folders branchpath.Folders) Properties {
	return Properties{
		"branch":                   branch,
		"version":                  quad.String(),
		"build":                    strconv.Itoa(quad.Build),
		"major":                    strconv.Itoa(quad.Major),
		"minor":                    strconv.Itoa(quad.Minor),
		"revision":                 strconv.Itoa(quad.Revision),
		"branchFolder":             folders.BranchFolder,
		"branchVersionFolder":      folders.BranchVersionFolder,
		"channelVersionFolder":     folders.ChannelVersionFolder,
		"channelVersionFolderRoot": folders.ChannelVersionFolderRoot,
		"channel":                  folders.Channel,
	}
}

// Expand substitutes every {name} placeholder in command. Unknown
// placeholders are left as-is so a misspelling surfaces in the tool
// invocation instead of vanishing silently.
func (p Properties) Expand(command string) string {
	pairs := make([]string, 0, len(p)*2)
	for name, value := range p {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(command)
}
