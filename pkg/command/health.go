package command

import (
	"context"

	"github.com/jackwhich/jenkins_api/pkg/action"
	"github.com/jackwhich/jenkins_api/pkg/config"
	"github.com/urfave/cli/v3"
)

// Health provides the sub-command to perform a health check.
func Health(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "perform health checks",
		Flags: append(
			RootFlags(cfg),
			HealthFlags(cfg)...,
		),
		Action: func(_ context.Context, _ *cli.Command) error {
			return action.Health(cfg, setupLogger(cfg))
		},
	}
}

// HealthFlags defines the available health flags.
func HealthFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "web.address",
			Value:       "0.0.0.0:9506",
			Usage:       "address of the metrics server",
			Sources:     cli.EnvVars("JENKINS_API_WEB_ADDRESS"),
			Destination: &cfg.Server.Addr,
		},
	}
}
