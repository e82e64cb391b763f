package action

import (
	"fmt"
	"log/slog"

	"github.com/jackwhich/jenkins_api/pkg/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	registry = prometheus.NewRegistry()

	requestFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jenkins_request_failures_total",
			Help: "Total number of failed requests against the Jenkins API per collector",
		},
		[]string{"collector"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "jenkins_request_duration_seconds",
			Help: "Duration of requests against the Jenkins API per collector",
		},
		[]string{"collector"},
	)
)

func init() {
	registry.MustRegister(version.Collector("jenkins_api"))
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(requestFailures)
	registry.MustRegister(requestDuration)
}

type promLogger struct {
	logger *slog.Logger
}

func (l promLogger) Println(v ...interface{}) {
	l.logger.Error(fmt.Sprintln(v...))
}
