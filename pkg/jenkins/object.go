package jenkins

import (
	"context"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// GetObject fetches the resource at a path with an explicit depth or tree
// query and decodes the response into out. It is the escape hatch for
// callers that want their own response shapes together with a projection
// query:
//
//	var job struct {
//		DisplayName string `json:"displayName"`
//	}
//
//	err := client.GetObject(ctx,
//		path.Job{Name: path.RawName("my job")},
//		jenkins.Tree(jenkins.NewTree().WithField("displayName").Build()),
//		&job,
//	)
func (c *Client) GetObject(ctx context.Context, p path.Path, query Query, out any) error {
	return c.getJSONWith(ctx, p, query, out)
}

// ParsePath maps a URL embedded in a server payload back to a structured
// path, stripping the client's endpoint prefix when present.
func (c *Client) ParsePath(rawURL string) (path.Path, error) {
	return c.urlToPath(rawURL)
}
