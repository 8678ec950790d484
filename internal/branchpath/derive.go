package branchpath

// LatestAlias is the reserved folder name pointing at the newest build of a
// channel. Branch segments must never collide with it.
const LatestAlias = "latest"

// DeriveOptions carries the per-call configuration for Derive. Values are
// explicit parameters rather than ambient defaults so derivations stay
// composable and testable.
type DeriveOptions struct {
	MaxSegments       int
	ForbiddenSegments []string
	ChannelTable      map[string]string
	DefaultChannel    string
}

// Folders holds the derived artifact routing paths for one build.
type Folders struct {
	// BranchFolder routes per-branch artifacts, e.g. "release/V2".
	BranchFolder string

	// BranchVersionFolder routes artifacts of one specific build,
	// e.g. "release/V2/0.2.20252.30947".
	BranchVersionFolder string

	// ChannelVersionFolder routes deployable artifacts by channel,
	// e.g. "staging/V2/0.2.20252.30947". Empty when the branch maps to
	// no deployment channel.
	ChannelVersionFolder string

	// ChannelVersionFolderRoot is the channel's "latest" alias folder,
	// e.g. "staging/latest". Empty when the branch maps to no channel.
	ChannelVersionFolderRoot string

	// Channel is the translated channel segment, including the
	// no-deploy sentinel for unmapped branch roots.
	Channel string
}

// Deployable reports whether the branch maps to a deployment channel.
func (f Folders) Deployable() bool {
	return f.ChannelVersionFolder != ""
}

// Derive computes the four artifact routing folders for a branch and a
// formatted version string. It is a one-shot pure derivation; an unmapped
// branch root collapses both channel outputs to empty strings, signaling
// "no deployable channel" to the deployment step.
func Derive(branch, version string, opts DeriveOptions) (Folders, error) {
	segments, err := Split(branch, opts.MaxSegments, opts.ForbiddenSegments)
	if err != nil {
		return Folders{}, err
	}

	folders := Folders{
		BranchFolder:        Join(segments, nil, nil),
		BranchVersionFolder: Join(segments, nil, []string{version}),
	}

	channelSegments, err := Translate(segments, opts.ChannelTable, opts.DefaultChannel)
	if err != nil {
		return Folders{}, err
	}
	folders.Channel = channelSegments[0]

	folders.ChannelVersionFolder = Join(channelSegments, nil, []string{version})
	folders.ChannelVersionFolderRoot = Join(channelSegments, nil, []string{LatestAlias})
	if len(channelSegments) == 2 {
		// The "latest" alias collapses sub-branch detail so one folder
		// per channel tracks the newest build.
		folders.ChannelVersionFolderRoot = Join(channelSegments[:1], nil, []string{LatestAlias})
	}

	if channelSegments[0] == opts.DefaultChannel {
		folders.ChannelVersionFolder = ""
		folders.ChannelVersionFolderRoot = ""
	}

	return folders, nil
}
