package jenkins

import (
	"context"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// ShortQueueItem defines the link to a queue item returned when
// triggering a build.
type ShortQueueItem struct {
	URL string `json:"url"`
}

// QueueItem defines an item waiting in the build queue, with information
// about the job and why and since when it waits.
type QueueItem struct {
	Class                      string      `json:"_class"`
	ID                         int64       `json:"id"`
	URL                        string      `json:"url"`
	Blocked                    bool        `json:"blocked"`
	Buildable                  bool        `json:"buildable"`
	Cancelled                  bool        `json:"cancelled"`
	Stuck                      bool        `json:"stuck"`
	InQueueSince               uint64      `json:"inQueueSince"`
	BuildableStartMilliseconds uint64      `json:"buildableStartMilliseconds"`
	Params                     string      `json:"params"`
	Why                        string      `json:"why"`
	Task                       ShortJob    `json:"task"`
	Executable                 *ShortBuild `json:"executable"`
	Actions                    []Action    `json:"actions"`
}

// Queue defines the build queue, the list of items waiting to be built.
type Queue struct {
	Class string      `json:"_class"`
	Items []QueueItem `json:"items"`
}

// GetQueue returns the build queue.
func (c *Client) GetQueue(ctx context.Context) (*Queue, error) {
	result := &Queue{}

	if err := c.getJSON(ctx, path.Queue{}, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetQueueItem returns a queue item by id.
func (c *Client) GetQueueItem(ctx context.Context, id int64) (*QueueItem, error) {
	result := &QueueItem{}

	if err := c.getJSON(ctx, path.QueueItem{ID: id}, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetFullQueueItem returns the complete queue item the short description
// links to.
func (s *ShortQueueItem) GetFullQueueItem(ctx context.Context, c *Client) (*QueueItem, error) {
	parsed, err := c.urlToPath(s.URL)

	if err != nil {
		return nil, err
	}

	if _, ok := parsed.(path.QueueItem); !ok {
		return nil, &InvalidURLError{URL: s.URL, Expected: ExpectedQueueItem}
	}

	result := &QueueItem{}

	if err := c.getJSON(ctx, parsed, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Refresh fetches the current state of the queue item.
func (q *QueueItem) Refresh(ctx context.Context, c *Client) (*QueueItem, error) {
	parsed, err := c.urlToPath(q.URL)

	if err != nil {
		return nil, err
	}

	if _, ok := parsed.(path.QueueItem); !ok {
		return nil, &InvalidURLError{URL: q.URL, Expected: ExpectedQueueItem}
	}

	result := &QueueItem{}

	if err := c.getJSON(ctx, parsed, result); err != nil {
		return nil, err
	}

	return result, nil
}
