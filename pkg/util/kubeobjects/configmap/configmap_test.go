package configmap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme/fake"
	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster"
	"github.com/amfleurke/mysql-operator/pkg/logd"
)

const (
	testConfigMapName = "mycluster-log-config"
	testNamespace     = "test-namespace"
)

func newOwner() *innodbcluster.InnoDBCluster {
	return &innodbcluster.InnoDBCluster{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "mycluster",
			Namespace: testNamespace,
		},
	}
}

func TestBuild(t *testing.T) {
	t.Run("sets namespace, data and owner", func(t *testing.T) {
		owner := newOwner()
		data := map[string]string{"general-log.cnf": "[mysqld]\ngeneral_log=0"}

		configMap, err := Build(owner, testConfigMapName, data)
		require.NoError(t, err)

		assert.Equal(t, testConfigMapName, configMap.Name)
		assert.Equal(t, testNamespace, configMap.Namespace)
		assert.Equal(t, data, configMap.Data)

		require.Len(t, configMap.OwnerReferences, 1)
		assert.Equal(t, owner.Name, configMap.OwnerReferences[0].Name)
		assert.True(t, *configMap.OwnerReferences[0].Controller)
	})
	t.Run("applies options", func(t *testing.T) {
		labels := map[string]string{"app.kubernetes.io/component": "log-config"}

		configMap, err := Build(newOwner(), testConfigMapName, nil, SetLabels(labels))
		require.NoError(t, err)

		assert.Equal(t, labels, configMap.Labels)
	})
}

func TestAreConfigMapsEqual(t *testing.T) {
	base := func() *corev1.ConfigMap {
		return &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:   testConfigMapName,
				Labels: map[string]string{"a": "1"},
			},
			Data: map[string]string{"key": "value"},
		}
	}

	t.Run("equal", func(t *testing.T) {
		assert.True(t, AreConfigMapsEqual(base(), base()))
	})
	t.Run("data differs", func(t *testing.T) {
		other := base()
		other.Data["key"] = "changed"

		assert.False(t, AreConfigMapsEqual(base(), other))
	})
	t.Run("labels differ", func(t *testing.T) {
		other := base()
		other.Labels["a"] = "2"

		assert.False(t, AreConfigMapsEqual(base(), other))
	})
	t.Run("resource version is ignored", func(t *testing.T) {
		other := base()
		other.ResourceVersion = "42"

		assert.True(t, AreConfigMapsEqual(base(), other))
	})
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	log := logd.Get().WithName("configmap-test")

	t.Run("CreateOrUpdate creates a missing ConfigMap", func(t *testing.T) {
		clt := fake.NewClient()

		configMap, err := Build(newOwner(), testConfigMapName, map[string]string{"key": "value"})
		require.NoError(t, err)

		changed, err := Query(clt, clt, log).CreateOrUpdate(ctx, configMap)
		require.NoError(t, err)
		assert.True(t, changed)

		stored := &corev1.ConfigMap{}
		require.NoError(t, clt.Get(ctx, client.ObjectKeyFromObject(configMap), stored))
		assert.Equal(t, "value", stored.Data["key"])
	})
	t.Run("CreateOrUpdate skips an unchanged ConfigMap", func(t *testing.T) {
		clt := fake.NewClient()
		query := Query(clt, clt, log)

		configMap, err := Build(newOwner(), testConfigMapName, map[string]string{"key": "value"})
		require.NoError(t, err)

		_, err = query.CreateOrUpdate(ctx, configMap.DeepCopy())
		require.NoError(t, err)

		changed, err := Query(clt, clt, log).CreateOrUpdate(ctx, configMap.DeepCopy())
		require.NoError(t, err)
		assert.False(t, changed)
	})
	t.Run("CreateOrUpdate updates changed data", func(t *testing.T) {
		clt := fake.NewClient()

		configMap, err := Build(newOwner(), testConfigMapName, map[string]string{"key": "value"})
		require.NoError(t, err)

		_, err = Query(clt, clt, log).CreateOrUpdate(ctx, configMap.DeepCopy())
		require.NoError(t, err)

		configMap.Data["key"] = "changed"

		changed, err := Query(clt, clt, log).CreateOrUpdate(ctx, configMap.DeepCopy())
		require.NoError(t, err)
		assert.True(t, changed)

		stored := &corev1.ConfigMap{}
		require.NoError(t, clt.Get(ctx, client.ObjectKeyFromObject(configMap), stored))
		assert.Equal(t, "changed", stored.Data["key"])
	})
}
