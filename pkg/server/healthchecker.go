package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// ProbeFunc reports whether a dependency answers correctly.
type ProbeFunc func(ctx context.Context) error

// ProbeHealthChecker is healthy while every probe succeeds.
type ProbeHealthChecker struct {
	probes []ProbeFunc
}

func NewProbeHealthChecker(probes ...ProbeFunc) *ProbeHealthChecker {
	return &ProbeHealthChecker{probes: probes}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	for _, p := range hc.probes {
		if ctx.Err() != nil || p(ctx) != nil {
			return false
		}
	}
	return true
}
