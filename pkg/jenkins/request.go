package jenkins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// Query narrows the amount of data the server returns for a GET request.
// Exactly one of the depth or tree parameters is sent, never both.
type Query struct {
	depth int
	tree  *TreeQueryParam
}

// Depth asks the server to expand nested objects down to the given depth.
func Depth(depth int) Query {
	return Query{depth: depth}
}

// Tree asks the server to return only the fields selected by the
// projection query.
func Tree(tree TreeQueryParam) Query {
	return Query{tree: &tree}
}

func (q Query) values() url.Values {
	values := url.Values{}

	if q.tree != nil {
		values.Set("tree", q.tree.String())
	} else {
		values.Set("depth", strconv.Itoa(q.depth))
	}

	return values
}

// apiURL builds the JSON API URL for a path. The computer endpoints
// already carry the /api/json suffix in their rendered form.
func (c *Client) apiURL(p path.Path) string {
	rendered := p.String()

	if strings.HasSuffix(rendered, "/api/json") {
		return c.endpoint + rendered
	}

	return c.endpoint + rendered + "/api/json"
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	c.logger.Debug("sending request",
		"method", req.Method,
		"url", req.URL.String(),
	)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, &StatusError{
			Code: resp.StatusCode,
			URL:  req.URL.String(),
		}
	}

	return resp, nil
}

// getJSON fetches the JSON representation of a path with the default
// depth and decodes it into out.
func (c *Client) getJSON(ctx context.Context, p path.Path, out any) error {
	return c.getJSONWith(ctx, p, Depth(c.depth), out)
}

// getJSONWith fetches the JSON representation of a path with an explicit
// depth or tree query and decodes it into out.
func (c *Client) getJSONWith(ctx context.Context, p path.Path, query Query, out any) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.apiURL(p)+"?"+query.values().Encode(),
		nil,
	)

	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.send(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// getText fetches the plain body of a path, without the /api/json
// suffix. Used for console logs and config.xml.
func (c *Client) getText(ctx context.Context, p path.Path) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.endpoint+p.String(),
		nil,
	)

	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.send(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return string(body), nil
}

// getWithParams issues a GET against the plain path URL with extra query
// parameters and returns the response. Used for remote build triggers
// where the interesting part is the Location header.
func (c *Client) getWithParams(ctx context.Context, p path.Path, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.endpoint+p.String()+"?"+params.Encode(),
		nil,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	return c.send(req)
}

// post issues a POST against the plain path URL, attaching a CSRF crumb
// unless disabled.
func (c *Client) post(ctx context.Context, p path.Path) (*http.Response, error) {
	return c.postWithBody(ctx, p, nil, "")
}

func (c *Client) postWithBody(ctx context.Context, p path.Path, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint+p.String(),
		body,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if err := c.addCrumb(ctx, req); err != nil {
		return nil, err
	}

	return c.send(req)
}
