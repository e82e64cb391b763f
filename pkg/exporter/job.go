package exporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackwhich/jenkins_api/pkg/config"
	"github.com/jackwhich/jenkins_api/pkg/internal/storage"
	"github.com/jackwhich/jenkins_api/pkg/jenkins"
	"github.com/prometheus/client_golang/prometheus"
)

// JobCollector collects metrics about the jobs configured on the server.
type JobCollector struct {
	client       *jenkins.Client
	logger       *slog.Logger
	failures     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	config       config.Target
	buildDetails bool
	folders      []string
	repo         *storage.JobRepo

	Disabled              *prometheus.Desc
	Buildable             *prometheus.Desc
	Color                 *prometheus.Desc
	LastBuild             *prometheus.Desc
	LastCompletedBuild    *prometheus.Desc
	LastFailedBuild       *prometheus.Desc
	LastStableBuild       *prometheus.Desc
	LastSuccessfulBuild   *prometheus.Desc
	LastUnstableBuild     *prometheus.Desc
	LastUnsuccessfulBuild *prometheus.Desc
	NextBuild             *prometheus.Desc
	Duration              *prometheus.Desc
	StartTime             *prometheus.Desc
	EndTime               *prometheus.Desc
	BuildStatus           *prometheus.Desc
}

// NewJobCollector returns a new JobCollector. The repo is optional, when
// given the highest observed build number is recorded per job.
func NewJobCollector(
	logger *slog.Logger,
	client *jenkins.Client,
	failures *prometheus.CounterVec,
	duration *prometheus.HistogramVec,
	cfg config.Target,
	buildDetails bool,
	folders []string,
	repo *storage.JobRepo,
) *JobCollector {
	if failures != nil {
		failures.WithLabelValues("job").Add(0)
	}

	labels := []string{"name", "path", "class"}

	return &JobCollector{
		client:       client,
		logger:       logger.With("collector", "job"),
		failures:     failures,
		duration:     duration,
		config:       cfg,
		buildDetails: buildDetails,
		folders:      folders,
		repo:         repo,

		Disabled: prometheus.NewDesc(
			"jenkins_job_disabled",
			"1 if the job is disabled, 0 otherwise",
			labels,
			nil,
		),
		Buildable: prometheus.NewDesc(
			"jenkins_job_buildable",
			"1 if the job is buildable, 0 otherwise",
			labels,
			nil,
		),
		Color: prometheus.NewDesc(
			"jenkins_job_color",
			"Color code of the job status ball",
			labels,
			nil,
		),
		LastBuild: prometheus.NewDesc(
			"jenkins_job_last_build",
			"Build number of the last build",
			labels,
			nil,
		),
		LastCompletedBuild: prometheus.NewDesc(
			"jenkins_job_last_completed_build",
			"Build number of the last completed build",
			labels,
			nil,
		),
		LastFailedBuild: prometheus.NewDesc(
			"jenkins_job_last_failed_build",
			"Build number of the last failed build",
			labels,
			nil,
		),
		LastStableBuild: prometheus.NewDesc(
			"jenkins_job_last_stable_build",
			"Build number of the last stable build",
			labels,
			nil,
		),
		LastSuccessfulBuild: prometheus.NewDesc(
			"jenkins_job_last_successful_build",
			"Build number of the last successful build",
			labels,
			nil,
		),
		LastUnstableBuild: prometheus.NewDesc(
			"jenkins_job_last_unstable_build",
			"Build number of the last unstable build",
			labels,
			nil,
		),
		LastUnsuccessfulBuild: prometheus.NewDesc(
			"jenkins_job_last_unsuccessful_build",
			"Build number of the last unsuccessful build",
			labels,
			nil,
		),
		NextBuild: prometheus.NewDesc(
			"jenkins_job_next_build_number",
			"Next build number of the job",
			labels,
			nil,
		),
		Duration: prometheus.NewDesc(
			"jenkins_job_duration",
			"Duration of the last build in ms",
			labels,
			nil,
		),
		StartTime: prometheus.NewDesc(
			"jenkins_job_start_time",
			"Start time of the last build as unix timestamp",
			labels,
			nil,
		),
		EndTime: prometheus.NewDesc(
			"jenkins_job_end_time",
			"End time of the last build as unix timestamp",
			labels,
			nil,
		),
		BuildStatus: prometheus.NewDesc(
			"jenkins_job_build_status",
			"Status of the last build: 0=success, 1=failure, 2=aborted, 3=unstable, 4=in_progress, 6=not_built",
			labels,
			nil,
		),
	}
}

// Metrics simply returns the list metric descriptors for generating a documentation.
func (c *JobCollector) Metrics() []*prometheus.Desc {
	return []*prometheus.Desc{
		c.Disabled,
		c.Buildable,
		c.Color,
		c.LastBuild,
		c.LastCompletedBuild,
		c.LastFailedBuild,
		c.LastStableBuild,
		c.LastSuccessfulBuild,
		c.LastUnstableBuild,
		c.LastUnsuccessfulBuild,
		c.NextBuild,
		c.Duration,
		c.StartTime,
		c.EndTime,
		c.BuildStatus,
	}
}

// Describe sends the super-set of all possible descriptors of metrics collected by this Collector.
func (c *JobCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, metric := range c.Metrics() {
		ch <- metric
	}
}

// Collect is called by the Prometheus registry when collecting metrics.
func (c *JobCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
	defer cancel()

	now := time.Now()
	jobs, err := FetchJobs(ctx, c.client, c.folders)
	c.duration.WithLabelValues("job").Observe(time.Since(now).Seconds())

	if err != nil {
		c.logger.Error("failed to fetch jobs",
			"err", err,
		)

		c.failures.WithLabelValues("job").Inc()
		return
	}

	c.logger.Debug("fetched jobs",
		"count", len(jobs),
	)

	for _, job := range jobs {
		c.collectJob(ctx, ch, job)
	}
}

func (c *JobCollector) collectJob(ctx context.Context, ch chan<- prometheus.Metric, job *jenkins.Job) {
	labels := []string{
		job.Name,
		jobPath(job),
		job.Class,
	}

	var disabled, buildable float64

	if job.Disabled {
		disabled = 1.0
	}

	if job.Buildable {
		buildable = 1.0
	}

	ch <- prometheus.MustNewConstMetric(
		c.Disabled,
		prometheus.GaugeValue,
		disabled,
		labels...,
	)

	ch <- prometheus.MustNewConstMetric(
		c.Buildable,
		prometheus.GaugeValue,
		buildable,
		labels...,
	)

	ch <- prometheus.MustNewConstMetric(
		c.Color,
		prometheus.GaugeValue,
		colorToGauge(job.Color),
		labels...,
	)

	refs := []struct {
		desc  *prometheus.Desc
		build *jenkins.ShortBuild
	}{
		{c.LastBuild, job.LastBuild},
		{c.LastCompletedBuild, job.LastCompletedBuild},
		{c.LastFailedBuild, job.LastFailedBuild},
		{c.LastStableBuild, job.LastStableBuild},
		{c.LastSuccessfulBuild, job.LastSuccessfulBuild},
		{c.LastUnstableBuild, job.LastUnstableBuild},
		{c.LastUnsuccessfulBuild, job.LastUnsuccessfulBuild},
	}

	for _, ref := range refs {
		if ref.build == nil {
			continue
		}

		ch <- prometheus.MustNewConstMetric(
			ref.desc,
			prometheus.GaugeValue,
			float64(ref.build.Number),
			labels...,
		)
	}

	ch <- prometheus.MustNewConstMetric(
		c.NextBuild,
		prometheus.GaugeValue,
		float64(job.NextBuildNumber),
		labels...,
	)

	status := colorToStatus(job.Color)

	if job.LastBuild != nil && c.buildDetails {
		buildCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		build, err := job.LastBuild.GetFullBuild(buildCtx, c.client)
		cancel()

		if err != nil {
			c.logger.Debug("failed to fetch last build",
				"job", jobPath(job),
				"err", err,
			)

			c.failures.WithLabelValues("job").Inc()
		} else {
			status = statusToGauge(build.Result, build.Building)

			ch <- prometheus.MustNewConstMetric(
				c.Duration,
				prometheus.GaugeValue,
				float64(build.Duration),
				labels...,
			)

			ch <- prometheus.MustNewConstMetric(
				c.StartTime,
				prometheus.GaugeValue,
				float64(build.Timestamp),
				labels...,
			)

			ch <- prometheus.MustNewConstMetric(
				c.EndTime,
				prometheus.GaugeValue,
				float64(build.Timestamp)+float64(build.Duration),
				labels...,
			)
		}
	}

	ch <- prometheus.MustNewConstMetric(
		c.BuildStatus,
		prometheus.GaugeValue,
		status,
		labels...,
	)

	if c.repo != nil && job.LastBuild != nil {
		if err := c.repo.UpdateLastSeen(jobPath(job), int64(job.LastBuild.Number)); err != nil {
			c.logger.Warn("failed to record last seen build",
				"job", jobPath(job),
				"err", err,
			)
		}
	}
}

// jobPath returns the folder-qualified name used as the path label.
func jobPath(job *jenkins.Job) string {
	if job.FullName != "" {
		return job.FullName
	}

	return job.Name
}

func colorToGauge(color jenkins.BallColor) float64 {
	switch color {
	case jenkins.ColorBlue:
		return 1.0
	case jenkins.ColorBlueAnime:
		return 1.5
	case jenkins.ColorRed:
		return 2.0
	case jenkins.ColorRedAnime:
		return 2.5
	case jenkins.ColorYellow:
		return 3.0
	case jenkins.ColorYellowAnime:
		return 3.5
	case jenkins.ColorNotBuilt:
		return 4.0
	case jenkins.ColorNotBuiltAnime:
		return 4.5
	case jenkins.ColorDisabled:
		return 5.0
	case jenkins.ColorDisabledAnime:
		return 5.5
	case jenkins.ColorAborted:
		return 6.0
	case jenkins.ColorAbortedAnime:
		return 6.5
	case jenkins.ColorGrey:
		return 7.0
	case jenkins.ColorGreyAnime:
		return 7.5
	}

	return 0.0
}

// colorToStatus infers the build status from the job color when the last
// build is not fetched.
func colorToStatus(color jenkins.BallColor) float64 {
	if color.Building() {
		return 4.0
	}

	switch color {
	case jenkins.ColorBlue:
		return 0.0
	case jenkins.ColorRed:
		return 1.0
	case jenkins.ColorAborted:
		return 2.0
	case jenkins.ColorYellow:
		return 3.0
	default:
		return 6.0
	}
}

func statusToGauge(result jenkins.BuildStatus, building bool) float64 {
	if building {
		return 4.0
	}

	switch result {
	case jenkins.StatusSuccess:
		return 0.0
	case jenkins.StatusFailure:
		return 1.0
	case jenkins.StatusAborted:
		return 2.0
	case jenkins.StatusUnstable:
		return 3.0
	default:
		return 6.0
	}
}
