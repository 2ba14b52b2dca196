// Package monitoring provides Prometheus collectors for operator-specific
// state. The generic reconcile counters and durations come from
// controller-runtime already, these metrics only cover what the framework
// cannot know about.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	logConfigRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mysql_operator_log_config_renders_total",
			Help: "Number of times the server log ConfigMap of a cluster was rendered.",
		},
		[]string{"cluster", "namespace"},
	)

	logConfigErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mysql_operator_log_config_errors_total",
			Help: "Number of log specification validation or rendering failures.",
		},
		[]string{"cluster", "namespace"},
	)

	clusterInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mysql_operator_cluster_info",
			Help: "Info-style metric for InnoDBCluster discovery. Always 1.",
		},
		[]string{"cluster", "namespace"},
	)
)

func init() {
	metrics.Registry.MustRegister(logConfigRenders, logConfigErrors, clusterInfo)
}

func RecordLogConfigRender(cluster, namespace string) {
	logConfigRenders.WithLabelValues(cluster, namespace).Inc()
}

func RecordLogConfigError(cluster, namespace string) {
	logConfigErrors.WithLabelValues(cluster, namespace).Inc()
}

func SetClusterInfo(cluster, namespace string) {
	clusterInfo.WithLabelValues(cluster, namespace).Set(1)
}

func ForgetCluster(cluster, namespace string) {
	clusterInfo.DeleteLabelValues(cluster, namespace)
	logConfigRenders.DeleteLabelValues(cluster, namespace)
	logConfigErrors.DeleteLabelValues(cluster, namespace)
}
