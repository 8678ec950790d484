// Package buildver encodes timestamps into compact four-part build versions.
//
// A version is Build.Major.Minor.Revision where Build and Major are
// caller-supplied constants and Minor/Revision carry a 64-second-resolution
// encoding of the timestamp. All builds within the same 64-second window share
// one version, and (Minor, Revision) ordering survives year rollover because
// Minor carries a year*10 offset.
package buildver

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	buildwayerrors "buildway.dev/buildway/internal/errors"
)

const (
	// MaxYear is the largest timestamp year that can be encoded.
	// Beyond it the Minor field would no longer order correctly.
	MaxYear = 6553

	// BucketSeconds is the time resolution of an encoded version.
	BucketSeconds = 64

	// revisionModulus splits the 64-second bucket counter into the
	// 16-bit Revision field and the Minor overflow.
	revisionModulus = 65536
)

// Quad is a four-part build version.
type Quad struct {
	Build    int
	Major    int
	Minor    int
	Revision int
}

// String returns the dot-joined version, e.g. "0.2.20252.30947".
func (q Quad) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", q.Build, q.Major, q.Minor, q.Revision)
}

// Encode derives a version quad from a timestamp and the caller-supplied
// Build and Major constants. The timestamp is read in its own location;
// no timezone conversion is applied.
func Encode(t time.Time, build, major int) (Quad, error) {
	if t.Year() > MaxYear {
		return Quad{}, buildwayerrors.NewYearOutOfRangeError(t.Year(), MaxYear)
	}

	yearStart := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	seconds := int64(t.Sub(yearStart) / time.Second)

	// Discard the 6 low bits: one unit of resolution is 64 seconds.
	bucket := seconds / BucketSeconds

	return Quad{
		Build:    build,
		Major:    major,
		Minor:    int(bucket/revisionModulus) + t.Year()*10,
		Revision: int(bucket % revisionModulus),
	}, nil
}

// Decode recovers the start of the 64-second bucket a quad was encoded from,
// in UTC. The encoding is lossy: only the bucket survives, not the exact
// instant.
func Decode(q Quad) (time.Time, error) {
	if q.Revision < 0 || q.Revision >= revisionModulus {
		return time.Time{}, fmt.Errorf("revision %d outside [0, %d]", q.Revision, revisionModulus-1)
	}
	if q.Minor < 10 {
		return time.Time{}, fmt.Errorf("minor %d carries no year offset", q.Minor)
	}

	// The upper bucket bits never exceed 7 within a year, so the year*10
	// offset and the overflow separate cleanly.
	year := q.Minor / 10
	upper := q.Minor % 10
	bucket := int64(upper)*revisionModulus + int64(q.Revision)

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start.Add(time.Duration(bucket*BucketSeconds) * time.Second), nil
}

// Parse parses a dot-joined "Build.Major.Minor.Revision" string.
func Parse(s string) (Quad, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Quad{}, fmt.Errorf("version %q is not of the form Build.Major.Minor.Revision", s)
	}

	nums := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Quad{}, fmt.Errorf("version %q has a non-numeric part %q", s, part)
		}
		nums[i] = n
	}

	return Quad{Build: nums[0], Major: nums[1], Minor: nums[2], Revision: nums[3]}, nil
}
