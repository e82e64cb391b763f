package jenkins

import (
	"errors"
	"fmt"
)

// ExpectedType names the resource kind a link between objects was
// expected to address.
type ExpectedType string

// Resource kinds used in InvalidURLError diagnostics.
const (
	ExpectedBuild               ExpectedType = "Build"
	ExpectedJob                 ExpectedType = "Job"
	ExpectedQueueItem           ExpectedType = "QueueItem"
	ExpectedView                ExpectedType = "View"
	ExpectedMavenArtifactRecord ExpectedType = "MavenArtifactRecord"
)

// InvalidURLError is returned when a link stored in a fetched object does
// not address the kind of resource the operation needs.
type InvalidURLError struct {
	URL      string
	Expected ExpectedType
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url for %s: %s", e.Expected, e.URL)
}

// CrumbError is returned when fetching or applying a CSRF crumb fails.
type CrumbError struct {
	Err error
}

func (e *CrumbError) Error() string {
	return fmt.Sprintf("crumb issuer: %v", e.Err)
}

func (e *CrumbError) Unwrap() error {
	return e.Err
}

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// ErrMissingLocation is returned when the server does not hand back the
// queue item location after triggering a build.
var ErrMissingLocation = errors.New("missing location header in response")
