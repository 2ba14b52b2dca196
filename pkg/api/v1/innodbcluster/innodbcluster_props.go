package innodbcluster

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster/logs"
)

const (
	// MySQLContainerName is the server container inside the cluster pods, the
	// log config files are mounted into it.
	MySQLContainerName = "mysql"

	logConfigMapSuffix = "-log-config"
)

// LogConfigMapName is the ConfigMap carrying the rendered my.cnf drop-ins.
func (cluster *InnoDBCluster) LogConfigMapName() string {
	return cluster.Name + logConfigMapSuffix
}

// StatefulSetName is the server StatefulSet owned by this cluster.
func (cluster *InnoDBCluster) StatefulSetName() string {
	return cluster.Name
}

func (cluster *InnoDBCluster) Conditions() *[]metav1.Condition {
	return &cluster.Status.Conditions
}

// LogsFragment returns the untyped specification fragment for the given log
// kind, nil when the logs section or the fragment is absent.
func (cluster *InnoDBCluster) LogsFragment(kind logs.Kind) map[string]interface{} {
	if cluster.Spec.Logs == nil {
		return nil
	}

	switch kind {
	case logs.ErrorKind:
		return cluster.Spec.Logs.Error
	case logs.GeneralKind:
		return cluster.Spec.Logs.General
	case logs.SlowQueryKind:
		return cluster.Spec.Logs.SlowQuery
	}

	return nil
}

// LogsFieldPath is the dotted path of a log kind's fragment in the
// specification document, used as error-path prefix during parsing.
func LogsFieldPath(kind logs.Kind) string {
	return "spec.logs." + string(kind)
}
