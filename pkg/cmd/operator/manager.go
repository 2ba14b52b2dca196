package operator

import (
	"github.com/pkg/errors"
	"k8s.io/client-go/rest"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme"
	cmdManager "github.com/amfleurke/mysql-operator/pkg/cmd/manager"
)

const (
	metricsBindAddress     = ":8080"
	healthProbeBindAddress = ":10080"

	leaderElectionID = "mysql-operator-lock"

	livezEndpointName  = "livez"
	readyzEndpointName = "readyz"
)

type operatorManagerProvider struct{}

func newOperatorManagerProvider() cmdManager.Provider {
	return operatorManagerProvider{}
}

func (provider operatorManagerProvider) CreateManager(namespace string, config *rest.Config) (manager.Manager, error) {
	mgr, err := ctrl.NewManager(config, provider.createOptions(namespace))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = provider.addHealthzCheck(mgr)
	if err != nil {
		return nil, err
	}

	err = provider.addReadyzCheck(mgr)
	if err != nil {
		return nil, err
	}

	return mgr, nil
}

func (provider operatorManagerProvider) createOptions(namespace string) ctrl.Options {
	options := ctrl.Options{
		Scheme: scheme.Scheme,
		Metrics: metricsserver.Options{
			BindAddress: metricsBindAddress,
		},
		HealthProbeBindAddress:  healthProbeBindAddress,
		LeaderElection:          true,
		LeaderElectionID:        leaderElectionID,
		LeaderElectionNamespace: namespace,
	}

	// an empty namespace means cluster-wide operation
	if namespace != "" {
		options.Cache = cache.Options{
			DefaultNamespaces: map[string]cache.Config{
				namespace: {},
			},
		}
	}

	return options
}

func (provider operatorManagerProvider) addHealthzCheck(mgr manager.Manager) error {
	return errors.WithStack(mgr.AddHealthzCheck(livezEndpointName, healthz.Ping))
}

func (provider operatorManagerProvider) addReadyzCheck(mgr manager.Manager) error {
	return errors.WithStack(mgr.AddReadyzCheck(readyzEndpointName, healthz.Ping))
}
