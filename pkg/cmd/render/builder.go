package render

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster"
	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster/logs"
)

const (
	use = "render-log-config"

	manifestFlagName = "manifest"
	outputFlagName   = "output"

	outputFileMode = os.FileMode(0644)
	outputDirMode  = os.FileMode(0755)
)

var (
	manifestPath string
	outputPath   string
)

// NewRenderCommand renders the my.cnf drop-ins of an InnoDBCluster manifest to
// a local directory, without talking to a cluster. Useful for inspecting what
// a given logs section produces before applying it.
func NewRenderCommand() *cobra.Command {
	fs := afero.NewOsFs()

	cmd := &cobra.Command{
		Use: use,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(fs, manifestPath, outputPath)
		},
	}

	addFlags(cmd)

	return cmd
}

func addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&manifestPath, manifestFlagName, "", "path to an InnoDBCluster manifest")
	cmd.PersistentFlags().StringVar(&outputPath, outputFlagName, ".", "directory the config files are written to")
	_ = cmd.MarkPersistentFlagRequired(manifestFlagName)
}

func run(fs afero.Fs, manifestPath string, outputPath string) error {
	cluster, err := readManifest(fs, manifestPath)
	if err != nil {
		return err
	}

	data, err := renderConfigFiles(cluster)
	if err != nil {
		return err
	}

	return writeConfigFiles(fs, outputPath, data)
}

func readManifest(fs afero.Fs, path string) (*innodbcluster.InnoDBCluster, error) {
	manifest, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cluster := &innodbcluster.InnoDBCluster{}

	err = yaml.UnmarshalStrict(manifest, cluster)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return cluster, nil
}

func renderConfigFiles(cluster *innodbcluster.InnoDBCluster) (map[string]string, error) {
	data := map[string]string{}

	for _, logSpec := range logs.NewSpecs() {
		prefix := innodbcluster.LogsFieldPath(logSpec.Kind())

		err := logSpec.Parse(cluster.LogsFragment(logSpec.Kind()), prefix)
		if err != nil {
			return nil, err
		}

		err = logSpec.Validate()
		if err != nil {
			return nil, err
		}

		for fileName, content := range logSpec.ConfigMapData() {
			data[fileName] = content
		}
	}

	return data, nil
}

func writeConfigFiles(fs afero.Fs, outputPath string, data map[string]string) error {
	err := fs.MkdirAll(outputPath, outputDirMode)
	if err != nil {
		return errors.WithStack(err)
	}

	for fileName, content := range data {
		err = afero.WriteFile(fs, filepath.Join(outputPath, fileName), []byte(content), outputFileMode)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
