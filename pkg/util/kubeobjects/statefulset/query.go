package statefulset

import (
	appsv1 "k8s.io/api/apps/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/amfleurke/mysql-operator/pkg/logd"
	"github.com/amfleurke/mysql-operator/pkg/util/hasher"
	"github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/internal/query"
	"github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/labels"
)

func Query(kubeClient client.Client, kubeReader client.Reader, log logd.Logger) query.Generic[*appsv1.StatefulSet, *appsv1.StatefulSetList] {
	return query.Generic[*appsv1.StatefulSet, *appsv1.StatefulSetList]{
		Target:     &appsv1.StatefulSet{},
		ListTarget: &appsv1.StatefulSetList{},
		ToList: func(statefulSetList *appsv1.StatefulSetList) []*appsv1.StatefulSet {
			out := []*appsv1.StatefulSet{}
			for index := range statefulSetList.Items {
				out = append(out, &statefulSetList.Items[index])
			}

			return out
		},
		IsEqual:      isEqual,
		MustRecreate: mustRecreate,

		KubeClient: kubeClient,
		KubeReader: kubeReader,
		Log:        log,
	}
}

func isEqual(current, desired *appsv1.StatefulSet) bool {
	return !hasher.IsAnnotationDifferent(current, desired)
}

// the selector is immutable, changing it forces a delete and re-create
func mustRecreate(current, desired *appsv1.StatefulSet) bool {
	return current.Spec.Selector != nil && desired.Spec.Selector != nil &&
		labels.NotEqual(current.Spec.Selector.MatchLabels, desired.Spec.Selector.MatchLabels)
}
