package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme/fake"
	"github.com/amfleurke/mysql-operator/pkg/logd"
)

func newQuery(clt client.WithWatch) Generic[*corev1.ConfigMap, *corev1.ConfigMapList] {
	return Generic[*corev1.ConfigMap, *corev1.ConfigMapList]{
		Target:     &corev1.ConfigMap{},
		ListTarget: &corev1.ConfigMapList{},
		ToList: func(configMapList *corev1.ConfigMapList) []*corev1.ConfigMap {
			out := []*corev1.ConfigMap{}
			for index := range configMapList.Items {
				out = append(out, &configMapList.Items[index])
			}

			return out
		},
		IsEqual: func(current, desired *corev1.ConfigMap) bool {
			return current.Data["key"] == desired.Data["key"]
		},

		KubeClient: clt,
		KubeReader: clt,
		Log:        logd.Get().WithName("query-test"),
	}
}

func newConfigMap(value string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "test-configmap",
			Namespace: "test-namespace",
		},
		Data: map[string]string{"key": value},
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the object", func(t *testing.T) {
		clt := fake.NewClient(newConfigMap("value"))
		query := newQuery(clt)

		require.NoError(t, query.Delete(ctx, newConfigMap("value")))

		err := clt.Get(ctx, client.ObjectKeyFromObject(newConfigMap("value")), &corev1.ConfigMap{})
		assert.Error(t, err)
	})
	t.Run("missing object is not an error", func(t *testing.T) {
		clt := fake.NewClient()
		query := newQuery(clt)

		assert.NoError(t, query.Delete(ctx, newConfigMap("value")))
	})
}

func TestRecreate(t *testing.T) {
	ctx := context.Background()

	existing := newConfigMap("old")
	existing.ResourceVersion = "42"
	clt := fake.NewClient(existing)
	query := newQuery(clt)

	desired := newConfigMap("new")
	desired.ResourceVersion = "42"
	require.NoError(t, query.Recreate(ctx, desired))

	stored := &corev1.ConfigMap{}
	require.NoError(t, clt.Get(ctx, client.ObjectKeyFromObject(desired), stored))
	assert.Equal(t, "new", stored.Data["key"])
}

func TestMustRecreatePath(t *testing.T) {
	ctx := context.Background()

	clt := fake.NewClient(newConfigMap("old"))
	query := newQuery(clt)
	query.MustRecreate = func(current, desired *corev1.ConfigMap) bool {
		return true
	}

	changed, err := query.CreateOrUpdate(ctx, newConfigMap("new"))
	require.NoError(t, err)
	assert.True(t, changed)

	stored := &corev1.ConfigMap{}
	require.NoError(t, clt.Get(ctx, client.ObjectKeyFromObject(newConfigMap("")), stored))
	assert.Equal(t, "new", stored.Data["key"])
}
