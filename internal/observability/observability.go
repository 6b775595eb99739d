package observability

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchmetric/internal/config"
	"github.com/riskibarqy/matchmetric/internal/platform/logging"
)

// Stack holds the process-wide telemetry started for one binary.
type Stack struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprofServer     *http.Server
}

// Start brings up tracing, continuous profiling and the pprof listener in that
// order. Anything already started is torn down when a later step fails.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{logger: logger}

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, err
	}
	s.shutdownTracing = shutdownTracing

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, err
	}
	s.stopProfiler = stopProfiler

	pprofServer, err := StartPprofServer(cfg, logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, err
	}
	s.pprofServer = pprofServer

	return s, nil
}

// Shutdown stops every started component in reverse order and reports all
// failures together.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var errs error
	if s.pprofServer != nil {
		timeout := 5 * time.Second
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		errs = crerr.CombineErrors(errs, StopPprofServer(s.pprofServer, s.logger, timeout))
	}
	if s.stopProfiler != nil {
		if err := s.stopProfiler(); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pyroscope"))
		}
	}
	if s.shutdownTracing != nil {
		if err := s.shutdownTracing(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "shutdown uptrace"))
		}
	}
	return errs
}
