package labels

import (
	"reflect"

	"github.com/amfleurke/mysql-operator/pkg/version"
)

const (
	AppNameLabel      = "app.kubernetes.io/name"
	AppInstanceLabel  = "app.kubernetes.io/instance"
	AppComponentLabel = "app.kubernetes.io/component"
	AppManagedByLabel = "app.kubernetes.io/managed-by"
	AppVersionLabel   = "app.kubernetes.io/version"

	MySQLComponentLabel     ComponentLabelValue = "mysql"
	LogConfigComponentLabel ComponentLabelValue = "log-config"
	OperatorComponentLabel  ComponentLabelValue = "operator"
)

type ComponentLabelValue string

// CommonLabels is the label set every resource owned by an InnoDBCluster
// carries, keyed by cluster name and component.
func CommonLabels(clusterName string, component ComponentLabelValue) map[string]string {
	return map[string]string{
		AppNameLabel:      version.AppName,
		AppInstanceLabel:  clusterName,
		AppComponentLabel: string(component),
		AppManagedByLabel: version.AppName,
		AppVersionLabel:   version.Version,
	}
}

func Merge(labelMaps ...map[string]string) map[string]string {
	merged := map[string]string{}

	for _, labelMap := range labelMaps {
		for key, value := range labelMap {
			merged[key] = value
		}
	}

	return merged
}

func NotEqual(currentLabels, desiredLabels map[string]string) bool {
	return !reflect.DeepEqual(currentLabels, desiredLabels)
}
