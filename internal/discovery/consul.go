// Package discovery registers the service with Consul so other services can
// find it. Registration is optional; without a Consul address the service
// runs standalone.
package discovery

import (
	"fmt"
	"net"

	capi "github.com/hashicorp/consul/api"
	"github.com/rs/zerolog"
)

// Registration is a handle for deregistering the service on shutdown.
type Registration struct {
	client    *capi.Client
	serviceID string
	logger    *zerolog.Logger
}

// Register registers an HTTP service with Consul, including a /health check.
// serverAddress is the host:port the service listens on.
func Register(consulAddress, serviceName, serverAddress string, logger *zerolog.Logger) (*Registration, error) {
	host, portStr, err := net.SplitHostPort(serverAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address %q: %w", serverAddress, err)
	}
	if host == "" {
		host = "127.0.0.1"
	}

	var port int
	if _, err := fmt.Sscanf(portStr, "%d", &port); err != nil {
		return nil, fmt.Errorf("invalid server port %q: %w", portStr, err)
	}

	cfg := capi.DefaultConfig()
	cfg.Address = consulAddress

	client, err := capi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	serviceID := fmt.Sprintf("%s-%s", serviceName, portStr)
	registration := &capi.AgentServiceRegistration{
		ID:      serviceID,
		Name:    serviceName,
		Address: host,
		Port:    port,
		Check: &capi.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", host, port),
			Interval:                       "10s",
			Timeout:                        "2s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := client.Agent().ServiceRegister(registration); err != nil {
		return nil, fmt.Errorf("failed to register service with consul: %w", err)
	}

	logger.Info().Str("service_id", serviceID).Msg("registered with consul")

	return &Registration{client: client, serviceID: serviceID, logger: logger}, nil
}

// Deregister removes the service from Consul.
func (r *Registration) Deregister() {
	if err := r.client.Agent().ServiceDeregister(r.serviceID); err != nil {
		r.logger.Error().Err(err).Msg("failed to deregister service from consul")
		return
	}

	r.logger.Info().Str("service_id", r.serviceID).Msg("deregistered from consul")
}
