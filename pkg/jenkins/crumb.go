package jenkins

import (
	"context"
	"net/http"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// crumb is the CSRF token the server hands out for POST requests.
type crumb struct {
	Crumb             string `json:"crumb"`
	CrumbRequestField string `json:"crumbRequestField"`
}

// getCrumb fetches a fresh crumb from the crumb issuer endpoint.
func (c *Client) getCrumb(ctx context.Context) (crumb, error) {
	result := crumb{}

	if err := c.getJSON(ctx, path.CrumbIssuer{}, &result); err != nil {
		return result, &CrumbError{Err: err}
	}

	return result, nil
}

// addCrumb attaches a CSRF crumb header to the request when CSRF
// protection is enabled on the client.
func (c *Client) addCrumb(ctx context.Context, req *http.Request) error {
	if !c.csrf {
		return nil
	}

	result, err := c.getCrumb(ctx)

	if err != nil {
		return err
	}

	req.Header.Set(result.CrumbRequestField, result.Crumb)

	return nil
}
