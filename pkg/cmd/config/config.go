package config

import (
	"github.com/pkg/errors"
	"k8s.io/client-go/rest"
	ctrl "sigs.k8s.io/controller-runtime"
)

// Provider hands out the rest config the commands run against.
type Provider interface {
	GetConfig() (*rest.Config, error)
}

type KubeConfigProvider struct{}

func NewKubeConfigProvider() KubeConfigProvider {
	return KubeConfigProvider{}
}

func (provider KubeConfigProvider) GetConfig() (*rest.Config, error) {
	config, err := ctrl.GetConfig()

	return config, errors.WithStack(err)
}
