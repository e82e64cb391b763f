package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackwhich/jenkins_api/pkg/internal/storage"
	"github.com/jackwhich/jenkins_api/pkg/jenkins"
	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// listing is the projection fetched while walking folders. It keeps the
// traversal cheap, the full job is only fetched for leaves.
var listing = jenkins.NewTree().
	WithSubtree(
		jenkins.NewTreeObject("jobs").
			WithField("_class").
			WithField("name").
			WithField("url").
			WithField("color"),
	).
	Build()

// FetchJobs returns all jobs of the server, walking into folders. When
// folders is not empty only the named folders are walked, names may be
// nested like "folder/inner".
func FetchJobs(ctx context.Context, client *jenkins.Client, folders []string) ([]*jenkins.Job, error) {
	var roots []jenkins.ShortJob

	if len(folders) == 0 {
		home := struct {
			Jobs []jenkins.ShortJob `json:"jobs"`
		}{}

		if err := client.GetObject(ctx, path.Home{}, jenkins.Tree(listing), &home); err != nil {
			return nil, fmt.Errorf("failed to fetch home: %w", err)
		}

		roots = home.Jobs
	} else {
		for _, folder := range folders {
			parsed, err := folderPath(folder)

			if err != nil {
				return nil, err
			}

			container := struct {
				Jobs []jenkins.ShortJob `json:"jobs"`
			}{}

			if err := client.GetObject(ctx, parsed, jenkins.Tree(listing), &container); err != nil {
				return nil, fmt.Errorf("failed to fetch folder %s: %w", folder, err)
			}

			roots = append(roots, container.Jobs...)
		}
	}

	var jobs []*jenkins.Job

	for _, short := range roots {
		collected, err := walkJob(ctx, client, short)

		if err != nil {
			return nil, err
		}

		jobs = append(jobs, collected...)
	}

	return jobs, nil
}

// walkJob resolves a short job, recursing when it turns out to be a
// folder.
func walkJob(ctx context.Context, client *jenkins.Client, short jenkins.ShortJob) ([]*jenkins.Job, error) {
	job, err := short.GetFullJob(ctx, client)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", short.Name, err)
	}

	if len(job.Jobs) == 0 {
		if isFolder(job.Class) {
			return nil, nil
		}

		return []*jenkins.Job{job}, nil
	}

	var jobs []*jenkins.Job

	for _, child := range job.Jobs {
		collected, err := walkJob(ctx, client, child)

		if err != nil {
			return nil, err
		}

		jobs = append(jobs, collected...)
	}

	return jobs, nil
}

// folderPath builds the resource path for a folder-qualified name like
// "folder/inner".
func folderPath(name string) (path.Path, error) {
	segments := strings.Split(name, "/")

	var built path.Path = path.Job{
		Name: path.RawName(segments[len(segments)-1]),
	}

	for i := len(segments) - 2; i >= 0; i-- {
		nested, err := path.Nest(path.RawName(segments[i]), built)

		if err != nil {
			return nil, fmt.Errorf("failed to build path for %s: %w", name, err)
		}

		built = nested
	}

	return built, nil
}

func isFolder(class string) bool {
	return strings.Contains(class, "Folder")
}

// StartDiscovery periodically reconciles the stored job list with the
// jobs found on the server. It blocks until the context is canceled.
func StartDiscovery(
	ctx context.Context,
	client *jenkins.Client,
	repo *storage.JobRepo,
	interval time.Duration,
	folders []string,
	logger *slog.Logger,
) error {
	logger = logger.With("component", "discovery")

	logger.Info("starting job discovery",
		"interval", interval,
		"folders", folders,
	)

	if err := syncOnce(ctx, client, repo, folders); err != nil {
		logger.Warn("initial sync failed, retrying next interval",
			"err", err,
		)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping job discovery")
			return ctx.Err()
		case <-ticker.C:
			if err := syncOnce(ctx, client, repo, folders); err != nil {
				logger.Warn("sync failed, retrying next interval",
					"err", err,
				)
			}
		}
	}
}

func syncOnce(ctx context.Context, client *jenkins.Client, repo *storage.JobRepo, folders []string) error {
	jobs, err := FetchJobs(ctx, client, folders)

	if err != nil {
		return err
	}

	names := make([]string, 0, len(jobs))

	for _, job := range jobs {
		names = append(names, jobPath(job))
	}

	return repo.Sync(names)
}
