package action

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jackwhich/jenkins_api/pkg/config"
)

// Health handles the health sub-command, probing the local healthz
// endpoint for liveness checks within containers.
func Health(cfg *config.Config, logger *slog.Logger) error {
	resp, err := http.Get(
		fmt.Sprintf("http://%s/healthz", cfg.Server.Addr),
	)

	if err != nil {
		logger.Error("failed to request health check",
			"err", err,
		)

		return err
	}

	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		logger.Error("health check seems to be in a bad state",
			"code", resp.StatusCode,
		)

		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}

	return nil
}
