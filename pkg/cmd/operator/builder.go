package operator

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"

	cmdConfig "github.com/amfleurke/mysql-operator/pkg/cmd/config"
	cmdManager "github.com/amfleurke/mysql-operator/pkg/cmd/manager"
	"github.com/amfleurke/mysql-operator/pkg/controllers/cluster"
	"github.com/amfleurke/mysql-operator/pkg/logd"
	"github.com/amfleurke/mysql-operator/pkg/version"
)

const (
	use = "operator"
)

type CommandBuilder struct {
	configProvider  cmdConfig.Provider
	managerProvider cmdManager.Provider
	signalHandler   context.Context
	namespace       string
}

func NewOperatorCommandBuilder() CommandBuilder {
	return CommandBuilder{}
}

func (builder CommandBuilder) SetConfigProvider(provider cmdConfig.Provider) CommandBuilder {
	builder.configProvider = provider

	return builder
}

func (builder CommandBuilder) SetNamespace(namespace string) CommandBuilder {
	builder.namespace = namespace

	return builder
}

func (builder CommandBuilder) setManagerProvider(provider cmdManager.Provider) CommandBuilder {
	builder.managerProvider = provider

	return builder
}

func (builder CommandBuilder) getManagerProvider() cmdManager.Provider {
	if builder.managerProvider == nil {
		builder.managerProvider = newOperatorManagerProvider()
	}

	return builder.managerProvider
}

func (builder CommandBuilder) setSignalHandler(ctx context.Context) CommandBuilder {
	builder.signalHandler = ctx

	return builder
}

func (builder CommandBuilder) getSignalHandler() context.Context {
	if builder.signalHandler == nil {
		builder.signalHandler = ctrl.SetupSignalHandler()
	}

	return builder.signalHandler
}

func (builder CommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:  use,
		RunE: builder.buildRun(),
	}
}

func (builder CommandBuilder) buildRun() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		version.LogVersion()
		logd.LogBaseLoggerSettings()

		kubeConfig, err := builder.configProvider.GetConfig()
		if err != nil {
			return err
		}

		operatorManager, err := builder.getManagerProvider().CreateManager(builder.namespace, kubeConfig)
		if err != nil {
			return err
		}

		err = cluster.NewController(operatorManager).SetupWithManager(operatorManager)
		if err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(operatorManager.Start(builder.getSignalHandler()))
	}
}
