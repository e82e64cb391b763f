package command

import (
	"context"
	"time"

	"github.com/jackwhich/jenkins_api/pkg/action"
	"github.com/jackwhich/jenkins_api/pkg/config"
	"github.com/urfave/cli/v3"
)

// Server provides the sub-command to start the server.
func Server(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "start integrated server",
		Flags: append(
			RootFlags(cfg),
			ServerFlags(cfg)...,
		),
		Action: func(_ context.Context, _ *cli.Command) error {
			return action.Server(cfg, setupLogger(cfg))
		},
	}
}

// ServerFlags defines the available server flags.
func ServerFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "web.address",
			Value:       "0.0.0.0:9506",
			Usage:       "address to bind the metrics server",
			Sources:     cli.EnvVars("JENKINS_API_WEB_ADDRESS"),
			Destination: &cfg.Server.Addr,
		},
		&cli.StringFlag{
			Name:        "web.path",
			Value:       "/metrics",
			Usage:       "path to bind the metrics server",
			Sources:     cli.EnvVars("JENKINS_API_WEB_PATH"),
			Destination: &cfg.Server.Path,
		},
		&cli.BoolFlag{
			Name:        "web.pprof",
			Value:       false,
			Usage:       "enable pprof debugging for server",
			Sources:     cli.EnvVars("JENKINS_API_WEB_PPROF"),
			Destination: &cfg.Server.Pprof,
		},
		&cli.DurationFlag{
			Name:        "web.timeout",
			Value:       10 * time.Second,
			Usage:       "server timeout for metrics endpoint",
			Sources:     cli.EnvVars("JENKINS_API_WEB_TIMEOUT"),
			Destination: &cfg.Server.Timeout,
		},
		&cli.StringFlag{
			Name:        "web.config",
			Value:       "",
			Usage:       "path to web-config file",
			Sources:     cli.EnvVars("JENKINS_API_WEB_CONFIG"),
			Destination: &cfg.Server.Web,
		},
		&cli.StringFlag{
			Name:        "jenkins.address",
			Value:       "",
			Usage:       "address of the Jenkins instance",
			Sources:     cli.EnvVars("JENKINS_API_ADDRESS"),
			Destination: &cfg.Target.Address,
		},
		&cli.StringFlag{
			Name:        "jenkins.username",
			Value:       "",
			Usage:       "username for the Jenkins instance",
			Sources:     cli.EnvVars("JENKINS_API_USERNAME"),
			Destination: &cfg.Target.Username,
		},
		&cli.StringFlag{
			Name:        "jenkins.password",
			Value:       "",
			Usage:       "password or API token for the Jenkins instance",
			Sources:     cli.EnvVars("JENKINS_API_PASSWORD"),
			Destination: &cfg.Target.Password,
		},
		&cli.DurationFlag{
			Name:        "jenkins.timeout",
			Value:       60 * time.Second,
			Usage:       "timeout for requests against the Jenkins instance",
			Sources:     cli.EnvVars("JENKINS_API_TIMEOUT"),
			Destination: &cfg.Target.Timeout,
		},
		&cli.BoolFlag{
			Name:        "collector.jobs",
			Value:       true,
			Usage:       "enable collector for jobs",
			Sources:     cli.EnvVars("JENKINS_API_COLLECTOR_JOBS"),
			Destination: &cfg.Collector.Jobs,
		},
		&cli.BoolFlag{
			Name:        "collector.nodes",
			Value:       false,
			Usage:       "enable collector for nodes",
			Sources:     cli.EnvVars("JENKINS_API_COLLECTOR_NODES"),
			Destination: &cfg.Collector.Nodes,
		},
		&cli.BoolFlag{
			Name:        "collector.queue",
			Value:       false,
			Usage:       "enable collector for the build queue",
			Sources:     cli.EnvVars("JENKINS_API_COLLECTOR_QUEUE"),
			Destination: &cfg.Collector.Queue,
		},
		&cli.BoolFlag{
			Name:        "collector.build-details",
			Value:       true,
			Usage:       "fetch the last build of every job for detailed metrics",
			Sources:     cli.EnvVars("JENKINS_API_COLLECTOR_BUILD_DETAILS"),
			Destination: &cfg.Collector.BuildDetails,
		},
		&cli.StringSliceFlag{
			Name:        "collector.folders",
			Usage:       "restrict the job collector to the given folders",
			Sources:     cli.EnvVars("JENKINS_API_COLLECTOR_FOLDERS"),
			Destination: &cfg.Collector.Folders,
		},
		&cli.StringFlag{
			Name:        "database.path",
			Value:       "",
			Usage:       "path to the local state database, disabled when empty",
			Sources:     cli.EnvVars("JENKINS_API_DATABASE_PATH"),
			Destination: &cfg.Database.Path,
		},
		&cli.DurationFlag{
			Name:        "database.sync-interval",
			Value:       5 * time.Minute,
			Usage:       "interval between job list syncs into the state database",
			Sources:     cli.EnvVars("JENKINS_API_DATABASE_SYNC_INTERVAL"),
			Destination: &cfg.Database.SyncInterval,
		},
	}
}
