package cluster

import (
	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/yaml"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme"
	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster"
	logsapi "github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster/logs"
	"github.com/amfleurke/mysql-operator/pkg/controllers/cluster/logs"
	"github.com/amfleurke/mysql-operator/pkg/util/hasher"
	"github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/labels"
)

const (
	defaultInstances int32 = 3

	serverImageRepository = "container-registry.oracle.com/mysql/community-server"
	defaultServerVersion  = "8.4.0"
)

// baseServerPodSpec is the starting point for the server pod. It is kept as an
// untyped tree because the log config mounts are merged into it structurally
// before the StatefulSet is submitted.
const baseServerPodSpec = `
containers:
  - name: mysql
    ports:
      - name: mysql
        containerPort: 3306
      - name: mysqlx
        containerPort: 33060
    volumeMounts:
      - name: datadir
        mountPath: /var/lib/mysql
`

func buildServerStatefulSet(cluster *innodbcluster.InnoDBCluster, logsReconciler *logs.Reconciler) (*appsv1.StatefulSet, error) {
	podSpec, err := buildServerPodSpec(cluster, logsReconciler)
	if err != nil {
		return nil, err
	}

	coreLabels := labels.CommonLabels(cluster.Name, labels.MySQLComponentLabel)
	replicas := cluster.Spec.Instances

	if replicas == 0 {
		replicas = defaultInstances
	}

	statefulSet := &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:      cluster.StatefulSetName(),
			Namespace: cluster.Namespace,
			Labels:    coreLabels,
		},
		Spec: appsv1.StatefulSetSpec{
			ServiceName: cluster.StatefulSetName() + "-instances",
			Replicas:    &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: coreLabels,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: coreLabels,
				},
				Spec: *podSpec,
			},
		},
	}

	err = hasher.AddAnnotation(statefulSet, statefulSet.Spec)
	if err != nil {
		return nil, err
	}

	err = ctrl.SetControllerReference(cluster, statefulSet, scheme.Scheme)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return statefulSet, nil
}

func buildServerPodSpec(cluster *innodbcluster.InnoDBCluster, logsReconciler *logs.Reconciler) (*corev1.PodSpec, error) {
	podSpecTree := map[string]interface{}{}

	err := yaml.Unmarshal([]byte(baseServerPodSpec), &podSpecTree)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	template := logsapi.NewTreeTemplate(podSpecTree)

	err = logsReconciler.AddMountsToTemplate(template)
	if err != nil {
		return nil, err
	}

	podSpec := &corev1.PodSpec{}

	err = runtime.DefaultUnstructuredConverter.FromUnstructured(template.Spec(), podSpec)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	setServerImage(podSpec, cluster)

	return podSpec, nil
}

func setServerImage(podSpec *corev1.PodSpec, cluster *innodbcluster.InnoDBCluster) {
	version := cluster.Spec.Version
	if version == "" {
		version = defaultServerVersion
	}

	for index := range podSpec.Containers {
		if podSpec.Containers[index].Name == innodbcluster.MySQLContainerName {
			podSpec.Containers[index].Image = serverImageRepository + ":" + version
		}
	}
}
