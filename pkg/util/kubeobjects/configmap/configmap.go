package configmap

import (
	"reflect"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme"
	"github.com/amfleurke/mysql-operator/pkg/logd"
	"github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/internal/query"
)

func Query(kubeClient client.Client, kubeReader client.Reader, log logd.Logger) query.Generic[*corev1.ConfigMap, *corev1.ConfigMapList] {
	return query.Generic[*corev1.ConfigMap, *corev1.ConfigMapList]{
		Target:     &corev1.ConfigMap{},
		ListTarget: &corev1.ConfigMapList{},
		ToList: func(configMapList *corev1.ConfigMapList) []*corev1.ConfigMap {
			out := []*corev1.ConfigMap{}
			for index := range configMapList.Items {
				out = append(out, &configMapList.Items[index])
			}

			return out
		},
		IsEqual: AreConfigMapsEqual,

		KubeClient: kubeClient,
		KubeReader: kubeReader,
		Log:        log,
	}
}

func AreConfigMapsEqual(configMap *corev1.ConfigMap, other *corev1.ConfigMap) bool {
	return reflect.DeepEqual(configMap.Data, other.Data) && reflect.DeepEqual(configMap.Labels, other.Labels) && reflect.DeepEqual(configMap.OwnerReferences, other.OwnerReferences)
}

type Option func(*corev1.ConfigMap)

func SetLabels(labels map[string]string) Option {
	return func(configMap *corev1.ConfigMap) {
		configMap.Labels = labels
	}
}

// Build creates a ConfigMap owned by the given object, living in its namespace.
func Build(owner client.Object, name string, data map[string]string, options ...Option) (*corev1.ConfigMap, error) {
	configMap := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: owner.GetNamespace(),
		},
		Data: data,
	}

	for _, option := range options {
		option(configMap)
	}

	err := controllerutil.SetControllerReference(owner, configMap, scheme.Scheme)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return configMap, nil
}
