package exporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackwhich/jenkins_api/pkg/config"
	"github.com/jackwhich/jenkins_api/pkg/jenkins"
	"github.com/prometheus/client_golang/prometheus"
)

// QueueCollector collects metrics about the build queue.
type QueueCollector struct {
	client   *jenkins.Client
	logger   *slog.Logger
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	config   config.Target

	Items     *prometheus.Desc
	Blocked   *prometheus.Desc
	Buildable *prometheus.Desc
	Stuck     *prometheus.Desc
	Oldest    *prometheus.Desc
}

// NewQueueCollector returns a new QueueCollector.
func NewQueueCollector(
	logger *slog.Logger,
	client *jenkins.Client,
	failures *prometheus.CounterVec,
	duration *prometheus.HistogramVec,
	cfg config.Target,
) *QueueCollector {
	if failures != nil {
		failures.WithLabelValues("queue").Add(0)
	}

	return &QueueCollector{
		client:   client,
		logger:   logger.With("collector", "queue"),
		failures: failures,
		duration: duration,
		config:   cfg,

		Items: prometheus.NewDesc(
			"jenkins_queue_items",
			"Number of items waiting in the build queue",
			nil,
			nil,
		),
		Blocked: prometheus.NewDesc(
			"jenkins_queue_blocked_items",
			"Number of blocked items in the build queue",
			nil,
			nil,
		),
		Buildable: prometheus.NewDesc(
			"jenkins_queue_buildable_items",
			"Number of buildable items in the build queue",
			nil,
			nil,
		),
		Stuck: prometheus.NewDesc(
			"jenkins_queue_stuck_items",
			"Number of stuck items in the build queue",
			nil,
			nil,
		),
		Oldest: prometheus.NewDesc(
			"jenkins_queue_oldest_item_since",
			"Unix timestamp of the oldest item waiting in the build queue",
			nil,
			nil,
		),
	}
}

// Metrics simply returns the list metric descriptors for generating a documentation.
func (c *QueueCollector) Metrics() []*prometheus.Desc {
	return []*prometheus.Desc{
		c.Items,
		c.Blocked,
		c.Buildable,
		c.Stuck,
		c.Oldest,
	}
}

// Describe sends the super-set of all possible descriptors of metrics collected by this Collector.
func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, metric := range c.Metrics() {
		ch <- metric
	}
}

// Collect is called by the Prometheus registry when collecting metrics.
func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
	defer cancel()

	now := time.Now()
	queue, err := c.client.GetQueue(ctx)
	c.duration.WithLabelValues("queue").Observe(time.Since(now).Seconds())

	if err != nil {
		c.logger.Error("failed to fetch queue",
			"err", err,
		)

		c.failures.WithLabelValues("queue").Inc()
		return
	}

	var blocked, buildable, stuck int
	var oldest uint64

	for _, item := range queue.Items {
		if item.Blocked {
			blocked++
		}

		if item.Buildable {
			buildable++
		}

		if item.Stuck {
			stuck++
		}

		if oldest == 0 || item.InQueueSince < oldest {
			oldest = item.InQueueSince
		}
	}

	ch <- prometheus.MustNewConstMetric(
		c.Items,
		prometheus.GaugeValue,
		float64(len(queue.Items)),
	)

	ch <- prometheus.MustNewConstMetric(
		c.Blocked,
		prometheus.GaugeValue,
		float64(blocked),
	)

	ch <- prometheus.MustNewConstMetric(
		c.Buildable,
		prometheus.GaugeValue,
		float64(buildable),
	)

	ch <- prometheus.MustNewConstMetric(
		c.Stuck,
		prometheus.GaugeValue,
		float64(stuck),
	)

	if oldest > 0 {
		// InQueueSince is reported in milliseconds.
		ch <- prometheus.MustNewConstMetric(
			c.Oldest,
			prometheus.GaugeValue,
			float64(oldest)/1000.0,
		)
	}
}
