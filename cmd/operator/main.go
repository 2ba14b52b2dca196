package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"

	cmdConfig "github.com/amfleurke/mysql-operator/pkg/cmd/config"
	"github.com/amfleurke/mysql-operator/pkg/cmd/operator"
	"github.com/amfleurke/mysql-operator/pkg/cmd/render"
	"github.com/amfleurke/mysql-operator/pkg/logd"
	"github.com/amfleurke/mysql-operator/pkg/version"
)

const envPodNamespace = "POD_NAMESPACE"

var log = logd.Get().WithName("main")

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:  version.AppName,
		RunE: rootCommand,
	}
}

func rootCommand(_ *cobra.Command, _ []string) error {
	return errors.New("operator binary must be called with one of the subcommands")
}

func createOperatorCommandBuilder() operator.CommandBuilder {
	return operator.NewOperatorCommandBuilder().
		SetNamespace(os.Getenv(envPodNamespace)).
		SetConfigProvider(cmdConfig.NewKubeConfigProvider())
}

func main() {
	ctrl.SetLogger(log.Logger)
	klog.SetLogger(log.Logger)

	cmd := newRootCommand()

	cmd.AddCommand(
		createOperatorCommandBuilder().Build(),
		render.NewRenderCommand(),
	)

	err := cmd.Execute()
	if err != nil {
		log.Info(err.Error())
		os.Exit(1)
	}
}
