package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"buildway.dev/buildway/internal/branchpath"
	"buildway.dev/buildway/internal/buildver"
)

func TestPropertiesExpand(t *testing.T) {
	t.Parallel()

	quad := buildver.Quad{Build: 0, Major: 2, Minor: 20252, Revision: 30947}
	folders := branchpath.Folders{
		BranchFolder:             "release/V2",
		BranchVersionFolder:      "release/V2/0.2.20252.30947",
		ChannelVersionFolder:     "staging/V2/0.2.20252.30947",
		ChannelVersionFolderRoot: "staging/latest",
		Channel:                  "staging",
	}
	props := NewProperties("release/v2", quad, folders)

	tests := []struct {
		name     string
		command  string
		expected string
	}{
		{
			name:     "version and fields",
			command:  "dotnet build -p:Version={version} -p:Rev={revision}",
			expected: "dotnet build -p:Version=0.2.20252.30947 -p:Rev=30947",
		},
		{
			name:     "folders",
			command:  "copy out {channelVersionFolder} {channelVersionFolderRoot}",
			expected: "copy out staging/V2/0.2.20252.30947 staging/latest",
		},
		{
			name:     "branch and channel",
			command:  "report --branch {branch} --channel {channel}",
			expected: "report --branch release/v2 --channel staging",
		},
		{
			name:     "unknown placeholders survive",
			command:  "echo {nope}",
			expected: "echo {nope}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, props.Expand(tt.command))
		})
	}
}
