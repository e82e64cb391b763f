package jenkins

import (
	"context"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// Computer defines one node attached to the Jenkins instance.
type Computer struct {
	Class               string `json:"_class"`
	DisplayName         string `json:"displayName"`
	Description         string `json:"description"`
	Icon                string `json:"icon"`
	IconClassName       string `json:"iconClassName"`
	Idle                bool   `json:"idle"`
	JnlpAgent           bool   `json:"jnlpAgent"`
	LaunchSupported     bool   `json:"launchSupported"`
	ManualLaunchAllowed bool   `json:"manualLaunchAllowed"`
	NumExecutors        int    `json:"numExecutors"`
	Offline             bool   `json:"offline"`
	OfflineCauseReason  string `json:"offlineCauseReason"`
	TemporarilyOffline  bool   `json:"temporarilyOffline"`
}

// ComputerSet defines the list of nodes attached to the Jenkins instance.
type ComputerSet struct {
	Class          string     `json:"_class"`
	DisplayName    string     `json:"displayName"`
	BusyExecutors  int        `json:"busyExecutors"`
	TotalExecutors int        `json:"totalExecutors"`
	Computers      []Computer `json:"computer"`
}

// GetNodes returns the set of nodes attached to the Jenkins instance.
func (c *Client) GetNodes(ctx context.Context) (*ComputerSet, error) {
	result := &ComputerSet{}

	if err := c.getJSON(ctx, path.Computers{}, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetNode returns a node by name.
func (c *Client) GetNode(ctx context.Context, name string) (*Computer, error) {
	result := &Computer{}

	err := c.getJSON(ctx, path.Computer{Name: path.RawName(name)}, result)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetMasterNode returns the built-in node.
func (c *Client) GetMasterNode(ctx context.Context) (*Computer, error) {
	return c.GetNode(ctx, "(master)")
}
