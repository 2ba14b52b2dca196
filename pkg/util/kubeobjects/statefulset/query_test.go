package statefulset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme/fake"
	"github.com/amfleurke/mysql-operator/pkg/logd"
	"github.com/amfleurke/mysql-operator/pkg/util/hasher"
)

func newTestStatefulSet(t *testing.T, selectorLabels map[string]string) *appsv1.StatefulSet {
	t.Helper()

	statefulSet := &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "mycluster",
			Namespace: "test-namespace",
		},
		Spec: appsv1.StatefulSetSpec{
			Selector: &metav1.LabelSelector{MatchLabels: selectorLabels},
		},
	}

	require.NoError(t, hasher.AddAnnotation(statefulSet, statefulSet.Spec))

	return statefulSet
}

func TestCreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	log := logd.Get().WithName("statefulset-test")
	selectorLabels := map[string]string{"app.kubernetes.io/instance": "mycluster"}

	t.Run("identical hash annotation means no update", func(t *testing.T) {
		clt := fake.NewClient(newTestStatefulSet(t, selectorLabels))

		changed, err := Query(clt, clt, log).CreateOrUpdate(ctx, newTestStatefulSet(t, selectorLabels))
		require.NoError(t, err)
		assert.False(t, changed)
	})
	t.Run("changed hash annotation triggers an update", func(t *testing.T) {
		clt := fake.NewClient(newTestStatefulSet(t, selectorLabels))

		desired := newTestStatefulSet(t, selectorLabels)
		desired.Spec.ServiceName = "mycluster-instances"
		require.NoError(t, hasher.AddAnnotation(desired, desired.Spec))

		changed, err := Query(clt, clt, log).CreateOrUpdate(ctx, desired)
		require.NoError(t, err)
		assert.True(t, changed)

		stored := &appsv1.StatefulSet{}
		require.NoError(t, clt.Get(ctx, client.ObjectKeyFromObject(desired), stored))
		assert.Equal(t, "mycluster-instances", stored.Spec.ServiceName)
	})
	t.Run("changed selector forces a recreate", func(t *testing.T) {
		current := newTestStatefulSet(t, selectorLabels)
		current.ResourceVersion = "42"
		clt := fake.NewClient(current)

		desired := newTestStatefulSet(t, map[string]string{"app.kubernetes.io/instance": "renamed"})

		changed, err := Query(clt, clt, log).CreateOrUpdate(ctx, desired)
		require.NoError(t, err)
		assert.True(t, changed)

		stored := &appsv1.StatefulSet{}
		require.NoError(t, clt.Get(ctx, client.ObjectKeyFromObject(desired), stored))
		assert.Equal(t, "renamed", stored.Spec.Selector.MatchLabels["app.kubernetes.io/instance"])
	})
}
