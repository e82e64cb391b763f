package command

import (
	"context"
	"os"

	"github.com/jackwhich/jenkins_api/pkg/config"
	"github.com/jackwhich/jenkins_api/pkg/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Run parses the command line arguments and executes the program.
func Run() error {
	cfg := config.Load()

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return err
		}
	}

	app := &cli.Command{
		Name:    "jenkins_api",
		Version: version.String,
		Usage:   "typed client and metrics exporter for the Jenkins API",
		Commands: []*cli.Command{
			Server(cfg),
			Health(cfg),
		},
	}

	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   "show the help, so what you see now",
	}

	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "print the current version of that tool",
	}

	return app.Run(context.Background(), os.Args)
}

// RootFlags defines the available root flags.
func RootFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log.level",
			Value:       "info",
			Usage:       "only log messages with given severity",
			Sources:     cli.EnvVars("JENKINS_API_LOG_LEVEL"),
			Destination: &cfg.Logs.Level,
		},
		&cli.BoolFlag{
			Name:        "log.pretty",
			Value:       false,
			Usage:       "enable pretty messages for logging",
			Sources:     cli.EnvVars("JENKINS_API_LOG_PRETTY"),
			Destination: &cfg.Logs.Pretty,
		},
	}
}
