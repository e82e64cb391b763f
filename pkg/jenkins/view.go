package jenkins

import (
	"context"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// ShortView defines the reduced view description used in lists and links
// from other objects.
type ShortView struct {
	Class string `json:"_class"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// View defines the response from specific views.
type View struct {
	Class       string     `json:"_class"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Jobs        []ShortJob `json:"jobs"`
}

// GetFullView returns the complete view the short description links to.
func (s *ShortView) GetFullView(ctx context.Context, c *Client) (*View, error) {
	parsed, err := c.urlToPath(s.URL)

	if err != nil {
		return nil, err
	}

	if _, ok := parsed.(path.View); !ok {
		return nil, &InvalidURLError{URL: s.URL, Expected: ExpectedView}
	}

	result := &View{}

	if err := c.getJSON(ctx, parsed, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetView returns a view by name.
func (c *Client) GetView(ctx context.Context, name string) (*View, error) {
	result := &View{}

	err := c.getJSON(ctx, path.View{Name: path.RawName(name)}, result)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// AddJobToView adds a job to a view, both referenced by name.
func (c *Client) AddJobToView(ctx context.Context, viewName, jobName string) error {
	resp, err := c.post(ctx, path.AddJobToView{
		JobName:  path.RawName(jobName),
		ViewName: path.RawName(viewName),
	})

	if err != nil {
		return err
	}

	return drain(resp)
}

// RemoveJobFromView removes a job from a view, both referenced by name.
func (c *Client) RemoveJobFromView(ctx context.Context, viewName, jobName string) error {
	resp, err := c.post(ctx, path.RemoveJobFromView{
		JobName:  path.RawName(jobName),
		ViewName: path.RawName(viewName),
	})

	if err != nil {
		return err
	}

	return drain(resp)
}

// AddJob adds the named job to this view.
func (v *View) AddJob(ctx context.Context, c *Client, jobName string) error {
	parsed, err := c.urlToPath(v.URL)

	if err != nil {
		return err
	}

	view, ok := parsed.(path.View)

	if !ok {
		return &InvalidURLError{URL: v.URL, Expected: ExpectedView}
	}

	resp, err := c.post(ctx, path.AddJobToView{
		JobName:  path.RawName(jobName),
		ViewName: view.Name,
	})

	if err != nil {
		return err
	}

	return drain(resp)
}

// RemoveJob removes the named job from this view.
func (v *View) RemoveJob(ctx context.Context, c *Client, jobName string) error {
	parsed, err := c.urlToPath(v.URL)

	if err != nil {
		return err
	}

	view, ok := parsed.(path.View)

	if !ok {
		return &InvalidURLError{URL: v.URL, Expected: ExpectedView}
	}

	resp, err := c.post(ctx, path.RemoveJobFromView{
		JobName:  path.RawName(jobName),
		ViewName: view.Name,
	})

	if err != nil {
		return err
	}

	return drain(resp)
}
