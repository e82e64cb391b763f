package jenkins

import (
	"context"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// BuildStatus is the result of a completed build.
type BuildStatus string

// Build results reported by the server.
const (
	StatusSuccess  BuildStatus = "SUCCESS"
	StatusUnstable BuildStatus = "UNSTABLE"
	StatusFailure  BuildStatus = "FAILURE"
	StatusNotBuilt BuildStatus = "NOT_BUILT"
	StatusAborted  BuildStatus = "ABORTED"
)

// Artifact defines a file archived by a build.
type Artifact struct {
	DisplayPath  string `json:"displayPath"`
	FileName     string `json:"fileName"`
	RelativePath string `json:"relativePath"`
}

// Action defines an action attached to a build.
type Action struct {
	Class      string      `json:"_class"`
	Parameters []Parameter `json:"parameters,omitempty"`
	Causes     []Cause     `json:"causes,omitempty"`
}

// Parameter defines a build parameter.
type Parameter struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Cause defines why a build was triggered.
type Cause struct {
	Class            string `json:"_class"`
	ShortDescription string `json:"shortDescription"`
}

// ShortBuild defines the reduced build description used in lists and
// links from other objects.
type ShortBuild struct {
	Class       string `json:"_class"`
	URL         string `json:"url"`
	Number      uint32 `json:"number"`
	DisplayName string `json:"displayName,omitempty"`
	Timestamp   uint64 `json:"timestamp,omitempty"`
}

// Build defines the response from specific builds.
type Build struct {
	Class             string      `json:"_class"`
	URL               string      `json:"url"`
	Number            uint32      `json:"number"`
	Duration          int64       `json:"duration"`
	EstimatedDuration int64       `json:"estimatedDuration"`
	Timestamp         uint64      `json:"timestamp"`
	KeepLog           bool        `json:"keepLog"`
	Result            BuildStatus `json:"result"`
	DisplayName       string      `json:"displayName"`
	FullDisplayName   string      `json:"fullDisplayName"`
	Description       string      `json:"description"`
	Building          bool        `json:"building"`
	ID                string      `json:"id"`
	QueueID           int64       `json:"queueId"`
	Actions           []Action    `json:"actions"`
	Artifacts         []Artifact  `json:"artifacts"`
}

// MavenArtifact defines one maven artifact attached to a build.
type MavenArtifact struct {
	ArtifactID    string `json:"artifactId"`
	GroupID       string `json:"groupId"`
	Version       string `json:"version"`
	Type          string `json:"type"`
	FileName      string `json:"fileName"`
	CanonicalName string `json:"canonicalName"`
	MD5Sum        string `json:"md5sum"`
}

// MavenArtifactRecord defines the maven artifacts of a build.
type MavenArtifactRecord struct {
	Class             string          `json:"_class"`
	URL               string          `json:"url"`
	AttachedArtifacts []MavenArtifact `json:"attachedArtifacts"`
	MainArtifact      *MavenArtifact  `json:"mainArtifact"`
	POMArtifact       *MavenArtifact  `json:"pomArtifact"`
}

// buildPath parses a stored build link, accepting folder-wrapped builds,
// and returns the full parsed path.
func buildPath(c *Client, link string) (path.Path, path.Build, error) {
	parsed, err := c.urlToPath(link)

	if err != nil {
		return nil, path.Build{}, err
	}

	build, ok := innermost(parsed).(path.Build)

	if !ok {
		return nil, path.Build{}, &InvalidURLError{URL: link, Expected: ExpectedBuild}
	}

	return parsed, build, nil
}

// GetFullBuild returns the complete build the short description links to.
func (s *ShortBuild) GetFullBuild(ctx context.Context, c *Client) (*Build, error) {
	parsed, _, err := buildPath(c, s.URL)

	if err != nil {
		return nil, err
	}

	result := &Build{}

	if err := c.getJSON(ctx, parsed, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetBuild returns a build of a job by name and build reference.
func (c *Client) GetBuild(ctx context.Context, jobName string, number path.BuildNumber) (*Build, error) {
	result := &Build{}

	err := c.getJSON(ctx, path.Build{
		JobName: path.RawName(jobName),
		Number:  number,
	}, result)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetJob returns the job this build belongs to.
func (b *Build) GetJob(ctx context.Context, c *Client) (*Job, error) {
	parsed, build, err := buildPath(c, b.URL)

	if err != nil {
		return nil, err
	}

	result := &Job{}

	err = c.getJSON(ctx, rewrap(parsed, path.Job{
		Name:          build.JobName,
		Configuration: build.Configuration,
	}), result)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetConsole returns the console log of the build.
func (b *Build) GetConsole(ctx context.Context, c *Client) (string, error) {
	parsed, build, err := buildPath(c, b.URL)

	if err != nil {
		return "", err
	}

	return c.getText(ctx, rewrap(parsed, path.ConsoleText{
		JobName:       build.JobName,
		Number:        build.Number,
		Configuration: build.Configuration,
	}))
}

// GetMavenArtifacts returns the maven artifact record of the build.
func (b *Build) GetMavenArtifacts(ctx context.Context, c *Client) (*MavenArtifactRecord, error) {
	parsed, build, err := buildPath(c, b.URL)

	if err != nil {
		return nil, err
	}

	result := &MavenArtifactRecord{}

	err = c.getJSON(ctx, rewrap(parsed, path.MavenArtifactRecord{
		JobName:       build.JobName,
		Number:        build.Number,
		Configuration: build.Configuration,
	}), result)

	if err != nil {
		return nil, err
	}

	return result, nil
}
