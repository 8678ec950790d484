package buildver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	buildwayerrors "buildway.dev/buildway/internal/errors"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		at       time.Time
		build    int
		major    int
		expected Quad
	}{
		{
			name:     "start of year",
			at:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			build:    0,
			major:    1,
			expected: Quad{Build: 0, Major: 1, Minor: 20250, Revision: 0},
		},
		{
			name:     "release pipeline reference point",
			at:       time.Date(2025, time.May, 1, 0, 20, 34, 0, time.UTC),
			build:    0,
			major:    2,
			expected: Quad{Build: 0, Major: 2, Minor: 20252, Revision: 30947},
		},
		{
			name:     "sub-bucket seconds are discarded",
			at:       time.Date(2025, time.January, 1, 0, 0, 63, 0, time.UTC),
			build:    0,
			major:    1,
			expected: Quad{Build: 0, Major: 1, Minor: 20250, Revision: 0},
		},
		{
			name:     "revision wraps into minor",
			at:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).Add(65536 * 64 * time.Second),
			build:    3,
			major:    4,
			expected: Quad{Build: 3, Major: 4, Minor: 20251, Revision: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			quad, err := Encode(tt.at, tt.build, tt.major)
			require.NoError(t, err)
			require.Equal(t, tt.expected, quad)
		})
	}
}

func TestEncode_YearOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := Encode(time.Date(6554, time.January, 1, 0, 0, 0, 0, time.UTC), 0, 1)
	require.ErrorIs(t, err, buildwayerrors.ErrYearOutOfRange)

	var yearErr *buildwayerrors.YearOutOfRangeError
	require.ErrorAs(t, err, &yearErr)
	require.Equal(t, 6554, yearErr.Year)
	require.Equal(t, MaxYear, yearErr.Max)
}

func TestEncode_MaxYearStillEncodes(t *testing.T) {
	t.Parallel()

	quad, err := Encode(time.Date(6553, time.December, 31, 23, 59, 59, 0, time.UTC), 0, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, quad.Revision, 0)
	require.LessOrEqual(t, quad.Revision, 65535)
}

func TestEncode_Idempotent(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.August, 29, 14, 3, 27, 0, time.UTC)
	first, err := Encode(at, 1, 2)
	require.NoError(t, err)
	second, err := Encode(at, 1, 2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncode_MonotonicWithinYear(t *testing.T) {
	t.Parallel()

	// Any two timestamps at least one bucket apart within a calendar year
	// must order under lexicographic (Minor, Revision) comparison.
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	previous, err := Encode(start, 0, 1)
	require.NoError(t, err)

	at := start
	for i := 0; i < 400; i++ {
		at = at.Add(19 * time.Hour)
		quad, err := Encode(at, 0, 1)
		require.NoError(t, err)

		ordered := quad.Minor > previous.Minor ||
			(quad.Minor == previous.Minor && quad.Revision > previous.Revision)
		require.True(t, ordered, "version at %s does not order after its predecessor", at)
		previous = quad
	}
}

func TestEncode_MonotonicAcrossYearRollover(t *testing.T) {
	t.Parallel()

	before, err := Encode(time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), 0, 1)
	require.NoError(t, err)
	after, err := Encode(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 0, 1)
	require.NoError(t, err)

	require.Greater(t, after.Minor, before.Minor)
}

func TestEncode_RespectsLocation(t *testing.T) {
	t.Parallel()

	// The encoding uses the timestamp's own time basis: equal wall clocks
	// in different locations produce equal versions.
	est := time.FixedZone("EST", -5*3600)
	utc, err := Encode(time.Date(2025, time.May, 1, 0, 20, 34, 0, time.UTC), 0, 2)
	require.NoError(t, err)
	local, err := Encode(time.Date(2025, time.May, 1, 0, 20, 34, 0, est), 0, 2)
	require.NoError(t, err)
	require.Equal(t, utc, local)
}

func TestDecode_RecoversBucket(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.May, 1, 0, 20, 34, 0, time.UTC)
	quad, err := Encode(at, 0, 2)
	require.NoError(t, err)

	decoded, err := Decode(quad)
	require.NoError(t, err)

	// Lossy by design: the decoded instant is the bucket start, not the
	// original time, but both live in the same 64-second bucket.
	require.Equal(t, time.Date(2025, time.May, 1, 0, 20, 16, 0, time.UTC), decoded)
	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t,
		int64(at.Sub(yearStart)/time.Second)/BucketSeconds,
		int64(decoded.Sub(yearStart)/time.Second)/BucketSeconds)
}

func TestDecode_RejectsMalformedQuads(t *testing.T) {
	t.Parallel()

	_, err := Decode(Quad{Build: 0, Major: 1, Minor: 20250, Revision: 70000})
	require.Error(t, err)

	_, err = Decode(Quad{Build: 0, Major: 1, Minor: 5, Revision: 0})
	require.Error(t, err)
}

func TestQuadString(t *testing.T) {
	t.Parallel()

	quad := Quad{Build: 0, Major: 2, Minor: 20252, Revision: 30947}
	require.Equal(t, "0.2.20252.30947", quad.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Quad
		wantErr  bool
	}{
		{
			name:     "round trip",
			input:    "0.2.20252.30947",
			expected: Quad{Build: 0, Major: 2, Minor: 20252, Revision: 30947},
		},
		{
			name:    "too few parts",
			input:   "1.2.3",
			wantErr: true,
		},
		{
			name:    "non numeric part",
			input:   "1.2.x.4",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			quad, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, quad)
		})
	}
}
