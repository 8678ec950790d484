package branchpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	buildwayerrors "buildway.dev/buildway/internal/errors"
)

func testOptions() DeriveOptions {
	return DeriveOptions{
		MaxSegments:       2,
		ForbiddenSegments: []string{LatestAlias},
		ChannelTable: map[string]string{
			"feature": "development",
			"develop": "quality",
			"bugfix":  "quality",
			"release": "staging",
			"main":    "production",
			"master":  "production",
			"hotfix":  "production",
		},
		DefaultChannel: "{nodeploy}",
	}
}

func TestDerive_ReleaseBranch(t *testing.T) {
	t.Parallel()

	folders, err := Derive("release/v2", "0.2.20252.30947", testOptions())
	require.NoError(t, err)

	require.Equal(t, "release/V2", folders.BranchFolder)
	require.Equal(t, "release/V2/0.2.20252.30947", folders.BranchVersionFolder)
	require.Equal(t, "staging/V2/0.2.20252.30947", folders.ChannelVersionFolder)
	// The latest alias collapses sub-branch detail for two-segment branches.
	require.Equal(t, "staging/latest", folders.ChannelVersionFolderRoot)
	require.Equal(t, "staging", folders.Channel)
	require.True(t, folders.Deployable())
}

func TestDerive_TrunkBranch(t *testing.T) {
	t.Parallel()

	folders, err := Derive("main", "1.0.20250.100", testOptions())
	require.NoError(t, err)

	require.Equal(t, "main", folders.BranchFolder)
	require.Equal(t, "main/1.0.20250.100", folders.BranchVersionFolder)
	require.Equal(t, "production/1.0.20250.100", folders.ChannelVersionFolder)
	require.Equal(t, "production/latest", folders.ChannelVersionFolderRoot)
	require.True(t, folders.Deployable())
}

func TestDerive_UnmappedRootCollapsesChannelOutputs(t *testing.T) {
	t.Parallel()

	folders, err := Derive("wip/spike", "0.1.20250.5", testOptions())
	require.NoError(t, err)

	require.Equal(t, "wip/SPIKE", folders.BranchFolder)
	require.Equal(t, "wip/SPIKE/0.1.20250.5", folders.BranchVersionFolder)
	require.Empty(t, folders.ChannelVersionFolder)
	require.Empty(t, folders.ChannelVersionFolderRoot)
	require.Equal(t, "{nodeploy}", folders.Channel)
	require.False(t, folders.Deployable())
}

func TestDerive_PropagatesSplitErrors(t *testing.T) {
	t.Parallel()

	_, err := Derive("a/b/c", "1.0.0.0", testOptions())
	require.ErrorIs(t, err, buildwayerrors.ErrSegmentLimit)

	_, err = Derive("latest/x", "1.0.0.0", testOptions())
	require.ErrorIs(t, err, buildwayerrors.ErrForbiddenSegment)
}

func TestDerive_EmptyBranch(t *testing.T) {
	t.Parallel()

	// An empty branch splits into nothing, which the translator rejects.
	_, err := Derive("", "1.0.0.0", testOptions())
	require.ErrorIs(t, err, buildwayerrors.ErrNoSegments)
}
