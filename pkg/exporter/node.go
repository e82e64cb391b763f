package exporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackwhich/jenkins_api/pkg/config"
	"github.com/jackwhich/jenkins_api/pkg/jenkins"
	"github.com/prometheus/client_golang/prometheus"
)

// NodeCollector collects metrics about the nodes attached to the server.
type NodeCollector struct {
	client   *jenkins.Client
	logger   *slog.Logger
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	config   config.Target

	Idle           *prometheus.Desc
	Offline        *prometheus.Desc
	Executors      *prometheus.Desc
	BusyExecutors  *prometheus.Desc
	TotalExecutors *prometheus.Desc
}

// NewNodeCollector returns a new NodeCollector.
func NewNodeCollector(
	logger *slog.Logger,
	client *jenkins.Client,
	failures *prometheus.CounterVec,
	duration *prometheus.HistogramVec,
	cfg config.Target,
) *NodeCollector {
	if failures != nil {
		failures.WithLabelValues("node").Add(0)
	}

	labels := []string{"name"}

	return &NodeCollector{
		client:   client,
		logger:   logger.With("collector", "node"),
		failures: failures,
		duration: duration,
		config:   cfg,

		Idle: prometheus.NewDesc(
			"jenkins_node_idle",
			"1 if the node is idle, 0 otherwise",
			labels,
			nil,
		),
		Offline: prometheus.NewDesc(
			"jenkins_node_offline",
			"1 if the node is offline, 0 otherwise",
			labels,
			nil,
		),
		Executors: prometheus.NewDesc(
			"jenkins_node_executors",
			"Number of executors configured on the node",
			labels,
			nil,
		),
		BusyExecutors: prometheus.NewDesc(
			"jenkins_nodes_busy_executors",
			"Number of busy executors across all nodes",
			nil,
			nil,
		),
		TotalExecutors: prometheus.NewDesc(
			"jenkins_nodes_total_executors",
			"Number of executors across all nodes",
			nil,
			nil,
		),
	}
}

// Metrics simply returns the list metric descriptors for generating a documentation.
func (c *NodeCollector) Metrics() []*prometheus.Desc {
	return []*prometheus.Desc{
		c.Idle,
		c.Offline,
		c.Executors,
		c.BusyExecutors,
		c.TotalExecutors,
	}
}

// Describe sends the super-set of all possible descriptors of metrics collected by this Collector.
func (c *NodeCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, metric := range c.Metrics() {
		ch <- metric
	}
}

// Collect is called by the Prometheus registry when collecting metrics.
func (c *NodeCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
	defer cancel()

	now := time.Now()
	nodes, err := c.client.GetNodes(ctx)
	c.duration.WithLabelValues("node").Observe(time.Since(now).Seconds())

	if err != nil {
		c.logger.Error("failed to fetch nodes",
			"err", err,
		)

		c.failures.WithLabelValues("node").Inc()
		return
	}

	ch <- prometheus.MustNewConstMetric(
		c.BusyExecutors,
		prometheus.GaugeValue,
		float64(nodes.BusyExecutors),
	)

	ch <- prometheus.MustNewConstMetric(
		c.TotalExecutors,
		prometheus.GaugeValue,
		float64(nodes.TotalExecutors),
	)

	for _, node := range nodes.Computers {
		var idle, offline float64

		if node.Idle {
			idle = 1.0
		}

		if node.Offline {
			offline = 1.0
		}

		ch <- prometheus.MustNewConstMetric(
			c.Idle,
			prometheus.GaugeValue,
			idle,
			node.DisplayName,
		)

		ch <- prometheus.MustNewConstMetric(
			c.Offline,
			prometheus.GaugeValue,
			offline,
			node.DisplayName,
		)

		ch <- prometheus.MustNewConstMetric(
			c.Executors,
			prometheus.GaugeValue,
			float64(node.NumExecutors),
			node.DisplayName,
		)
	}
}
