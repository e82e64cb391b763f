package jenkins

import (
	"context"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// Home defines the response from the root of the Jenkins instance.
type Home struct {
	Class           string      `json:"_class"`
	Mode            string      `json:"mode"`
	NodeDescription string      `json:"nodeDescription"`
	NodeName        string      `json:"nodeName"`
	NumExecutors    int         `json:"numExecutors"`
	Description     string      `json:"description"`
	QuietingDown    bool        `json:"quietingDown"`
	SlaveAgentPort  int         `json:"slaveAgentPort"`
	UseCrumbs       bool        `json:"useCrumbs"`
	UseSecurity     bool        `json:"useSecurity"`
	Jobs            []ShortJob  `json:"jobs"`
	Views           []ShortView `json:"views"`
}

// GetHome returns the root object of the Jenkins instance.
func (c *Client) GetHome(ctx context.Context) (*Home, error) {
	result := &Home{}

	if err := c.getJSON(ctx, path.Home{}, result); err != nil {
		return nil, err
	}

	return result, nil
}
