package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Response is the body of the /health endpoint
type Response struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo is the state of one checked dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service runs the registered dependency checks
type Service struct {
	serviceName string
	checkers    map[string]Checker
	timeout     time.Duration
}

// NewService creates a health service for serviceName
func NewService(serviceName string) *Service {
	return &Service{
		serviceName: serviceName,
		checkers:    make(map[string]Checker),
		timeout:     3 * time.Second,
	}
}

// AddChecker registers a checker under name
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Names returns the registered dependency names in sorted order
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check runs every checker and aggregates the result
func (s *Service) Check(ctx context.Context) Response {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp := Response{
		Status:       StatusHealthy,
		Service:      s.serviceName,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(s.checkers)),
	}

	for _, name := range s.Names() {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			resp.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			resp.Status = StatusUnhealthy
			continue
		}
		resp.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return resp
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if v := os.Getenv("VERSION"); v != "" {
		info.Version = v
	}
	if c := os.Getenv("GIT_COMMIT"); c != "" {
		info.GitCommit = c
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterHealthEndpoints registers /ping, /health and the liveness/readiness checks
func RegisterHealthEndpoints(e *echo.Echo, svc *Service) {
	e.GET("/ping", NewPingHandler(svc.serviceName))

	check := func(c echo.Context) error {
		resp := svc.Check(c.Request().Context())
		if resp.Status != StatusHealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
	e.GET("/health", check)
	e.GET("/health/ready", check)

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "alive", "service": svc.serviceName})
	})
}
