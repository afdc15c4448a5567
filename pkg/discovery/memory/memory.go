package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mkvy/moviestore/pkg/discovery"
)

// ttl is how long an instance stays active without reporting healthy state.
const ttl = 5 * time.Second

// Registry defines an in-memory service registry.
type Registry struct {
	sync.RWMutex
	serviceAddrs map[string]map[string]*serviceInstance
	now          func() time.Time
}

type serviceInstance struct {
	hostPort   string
	lastActive time.Time
}

// NewRegistry creates a new in-memory service registry.
func NewRegistry() *Registry {
	return &Registry{
		serviceAddrs: map[string]map[string]*serviceInstance{},
		now:          time.Now,
	}
}

// Register creates a service record in the registry.
func (r *Registry) Register(_ context.Context, instanceID string, serviceName string, hostPort string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		r.serviceAddrs[serviceName] = map[string]*serviceInstance{}
	}
	r.serviceAddrs[serviceName][instanceID] = &serviceInstance{hostPort: hostPort, lastActive: r.now()}
	return nil
}

// Deregister removes a service record from the registry.
func (r *Registry) Deregister(_ context.Context, instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		return nil
	}
	delete(r.serviceAddrs[serviceName], instanceID)
	return nil
}

// ReportHealthyState marks the instance as active.
func (r *Registry) ReportHealthyState(instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		return errors.New("service is not registered yet")
	}
	if _, ok := r.serviceAddrs[serviceName][instanceID]; !ok {
		return errors.New("service instance is not registered yet")
	}
	r.serviceAddrs[serviceName][instanceID].lastActive = r.now()
	return nil
}

// ServiceAddresses returns the addresses of the service instances that
// reported healthy state within the last five seconds.
func (r *Registry) ServiceAddresses(_ context.Context, serviceName string) ([]string, error) {
	r.RLock()
	defer r.RUnlock()
	var res []string
	for _, i := range r.serviceAddrs[serviceName] {
		if i.lastActive.Before(r.now().Add(-ttl)) {
			continue
		}
		res = append(res, i.hostPort)
	}
	if len(res) == 0 {
		return nil, discovery.ErrNotFound
	}
	return res, nil
}
