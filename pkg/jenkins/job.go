package jenkins

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// BallColor is the color code of a job status ball, including the _anime
// variants shown while a build is running.
type BallColor string

// Ball colors reported by the server.
const (
	ColorBlue          BallColor = "blue"
	ColorBlueAnime     BallColor = "blue_anime"
	ColorYellow        BallColor = "yellow"
	ColorYellowAnime   BallColor = "yellow_anime"
	ColorRed           BallColor = "red"
	ColorRedAnime      BallColor = "red_anime"
	ColorGrey          BallColor = "grey"
	ColorGreyAnime     BallColor = "grey_anime"
	ColorDisabled      BallColor = "disabled"
	ColorDisabledAnime BallColor = "disabled_anime"
	ColorAborted       BallColor = "aborted"
	ColorAbortedAnime  BallColor = "aborted_anime"
	ColorNotBuilt      BallColor = "notbuilt"
	ColorNotBuiltAnime BallColor = "notbuilt_anime"
)

// Building reports whether the color carries the animated suffix the
// server uses while a build is in progress.
func (c BallColor) Building() bool {
	return strings.HasSuffix(string(c), "_anime")
}

// ShortJob defines the reduced job description used in lists and links
// from other objects.
type ShortJob struct {
	Class string    `json:"_class"`
	Name  string    `json:"name"`
	URL   string    `json:"url"`
	Color BallColor `json:"color"`
}

// Job defines the response from specific jobs.
type Job struct {
	Class                 string       `json:"_class"`
	Name                  string       `json:"name"`
	DisplayName           string       `json:"displayName"`
	FullDisplayName       string       `json:"fullDisplayName"`
	FullName              string       `json:"fullName"`
	Description           string       `json:"description"`
	URL                   string       `json:"url"`
	Color                 BallColor    `json:"color"`
	Buildable             bool         `json:"buildable"`
	Disabled              bool         `json:"disabled"`
	ConcurrentBuild       bool         `json:"concurrentBuild"`
	KeepDependencies      bool         `json:"keepDependencies"`
	NextBuildNumber       uint32       `json:"nextBuildNumber"`
	InQueue               bool         `json:"inQueue"`
	LastBuild             *ShortBuild  `json:"lastBuild"`
	FirstBuild            *ShortBuild  `json:"firstBuild"`
	LastStableBuild       *ShortBuild  `json:"lastStableBuild"`
	LastUnstableBuild     *ShortBuild  `json:"lastUnstableBuild"`
	LastSuccessfulBuild   *ShortBuild  `json:"lastSuccessfulBuild"`
	LastUnsuccessfulBuild *ShortBuild  `json:"lastUnsuccessfulBuild"`
	LastCompletedBuild    *ShortBuild  `json:"lastCompletedBuild"`
	LastFailedBuild       *ShortBuild  `json:"lastFailedBuild"`
	Builds                []ShortBuild `json:"builds"`
	Jobs                  []ShortJob   `json:"jobs"`
}

// jobPath parses a stored job link, accepting folder-wrapped jobs, and
// returns the full parsed path.
func jobPath(c *Client, link string) (path.Path, path.Job, error) {
	parsed, err := c.urlToPath(link)

	if err != nil {
		return nil, path.Job{}, err
	}

	job, ok := innermost(parsed).(path.Job)

	if !ok {
		return nil, path.Job{}, &InvalidURLError{URL: link, Expected: ExpectedJob}
	}

	return parsed, job, nil
}

// GetFullJob returns the complete job the short description links to.
func (s *ShortJob) GetFullJob(ctx context.Context, c *Client) (*Job, error) {
	parsed, _, err := jobPath(c, s.URL)

	if err != nil {
		return nil, err
	}

	result := &Job{}

	if err := c.getJSON(ctx, parsed, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetJob returns a job by name.
func (c *Client) GetJob(ctx context.Context, name string) (*Job, error) {
	result := &Job{}

	err := c.getJSON(ctx, path.Job{Name: path.RawName(name)}, result)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// Enable enables the job. The job may need to be refreshed afterwards as
// the server state has changed.
func (j *Job) Enable(ctx context.Context, c *Client) error {
	parsed, job, err := jobPath(c, j.URL)

	if err != nil {
		return err
	}

	resp, err := c.post(ctx, rewrap(parsed, path.JobEnable{Name: job.Name}))

	if err != nil {
		return err
	}

	return drain(resp)
}

// Disable disables the job.
func (j *Job) Disable(ctx context.Context, c *Client) error {
	parsed, job, err := jobPath(c, j.URL)

	if err != nil {
		return err
	}

	resp, err := c.post(ctx, rewrap(parsed, path.JobDisable{Name: job.Name}))

	if err != nil {
		return err
	}

	return drain(resp)
}

// AddToView adds the job to the named view.
func (j *Job) AddToView(ctx context.Context, c *Client, viewName string) error {
	_, job, err := jobPath(c, j.URL)

	if err != nil {
		return err
	}

	resp, err := c.post(ctx, path.AddJobToView{
		JobName:  job.Name,
		ViewName: path.RawName(viewName),
	})

	if err != nil {
		return err
	}

	return drain(resp)
}

// RemoveFromView removes the job from the named view.
func (j *Job) RemoveFromView(ctx context.Context, c *Client, viewName string) error {
	_, job, err := jobPath(c, j.URL)

	if err != nil {
		return err
	}

	resp, err := c.post(ctx, path.RemoveJobFromView{
		JobName:  job.Name,
		ViewName: path.RawName(viewName),
	})

	if err != nil {
		return err
	}

	return drain(resp)
}

// GetConfigXML returns the raw configuration file of the job.
func (j *Job) GetConfigXML(ctx context.Context, c *Client) (string, error) {
	parsed, job, err := jobPath(c, j.URL)

	if err != nil {
		return "", err
	}

	return c.getText(ctx, rewrap(parsed, path.ConfigXML{JobName: job.Name}))
}

// PollSCM asks the server to poll the SCM of the job.
func (j *Job) PollSCM(ctx context.Context, c *Client) error {
	parsed, job, err := jobPath(c, j.URL)

	if err != nil {
		return err
	}

	resp, err := c.post(ctx, rewrap(parsed, path.PollSCMJob{Name: job.Name}))

	if err != nil {
		return err
	}

	return drain(resp)
}

// Build triggers a build of the job and returns the link to the created
// queue item.
func (j *Job) Build(ctx context.Context, c *Client) (*ShortQueueItem, error) {
	parsed, job, err := jobPath(c, j.URL)

	if err != nil {
		return nil, err
	}

	return c.triggerBuild(ctx, rewrap(parsed, path.BuildJob{Name: job.Name}))
}

// BuildJob triggers a build of a job by name and returns the link to the
// created queue item.
func (c *Client) BuildJob(ctx context.Context, name string) (*ShortQueueItem, error) {
	return c.triggerBuild(ctx, path.BuildJob{Name: path.RawName(name)})
}

// BuildJobWithParameters triggers a parameterized build of a job by name.
func (c *Client) BuildJobWithParameters(ctx context.Context, name string, params url.Values) (*ShortQueueItem, error) {
	resp, err := c.postWithBody(
		ctx,
		path.BuildJobWithParameters{Name: path.RawName(name)},
		strings.NewReader(params.Encode()),
		"application/x-www-form-urlencoded",
	)

	if err != nil {
		return nil, err
	}

	return queueItemFromLocation(resp)
}

// TriggerJobRemotely triggers a build of a job through its remote trigger
// token, optionally recording a cause.
func (c *Client) TriggerJobRemotely(ctx context.Context, name, token, cause string) (*ShortQueueItem, error) {
	params := url.Values{}
	params.Set("token", token)

	if cause != "" {
		params.Set("cause", cause)
	}

	resp, err := c.getWithParams(ctx, path.BuildJob{Name: path.RawName(name)}, params)

	if err != nil {
		return nil, err
	}

	return queueItemFromLocation(resp)
}

func (c *Client) triggerBuild(ctx context.Context, p path.Path) (*ShortQueueItem, error) {
	resp, err := c.post(ctx, p)

	if err != nil {
		return nil, err
	}

	return queueItemFromLocation(resp)
}

// queueItemFromLocation extracts the queue item link the server returns
// after triggering a build.
func queueItemFromLocation(resp *http.Response) (*ShortQueueItem, error) {
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	location := resp.Header.Get("Location")

	if location == "" {
		return nil, ErrMissingLocation
	}

	return &ShortQueueItem{URL: location}, nil
}

// drain closes a response whose body carries nothing of interest.
func drain(resp *http.Response) error {
	defer resp.Body.Close()

	_, err := io.Copy(io.Discard, resp.Body)

	return err
}
