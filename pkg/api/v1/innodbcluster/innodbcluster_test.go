package innodbcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster/logs"
)

func newCluster() *InnoDBCluster {
	return &InnoDBCluster{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "mycluster",
			Namespace: "test-namespace",
		},
	}
}

func TestNames(t *testing.T) {
	cluster := newCluster()

	assert.Equal(t, "mycluster-log-config", cluster.LogConfigMapName())
	assert.Equal(t, "mycluster", cluster.StatefulSetName())
}

func TestLogsFragment(t *testing.T) {
	t.Run("nil logs section", func(t *testing.T) {
		cluster := newCluster()

		assert.Nil(t, cluster.LogsFragment(logs.ErrorKind))
		assert.Nil(t, cluster.LogsFragment(logs.GeneralKind))
		assert.Nil(t, cluster.LogsFragment(logs.SlowQueryKind))
	})
	t.Run("returns the matching fragment", func(t *testing.T) {
		cluster := newCluster()
		cluster.Spec.Logs = &LogsSpec{
			Error:     map[string]interface{}{"verbosity": 2},
			General:   map[string]interface{}{"enabled": true},
			SlowQuery: map[string]interface{}{"longQueryTime": 1.5},
		}

		assert.Equal(t, map[string]interface{}{"verbosity": 2}, cluster.LogsFragment(logs.ErrorKind))
		assert.Equal(t, map[string]interface{}{"enabled": true}, cluster.LogsFragment(logs.GeneralKind))
		assert.Equal(t, map[string]interface{}{"longQueryTime": 1.5}, cluster.LogsFragment(logs.SlowQueryKind))
	})
}

func TestLogsFieldPath(t *testing.T) {
	assert.Equal(t, "spec.logs.error", LogsFieldPath(logs.ErrorKind))
	assert.Equal(t, "spec.logs.general", LogsFieldPath(logs.GeneralKind))
	assert.Equal(t, "spec.logs.slowQuery", LogsFieldPath(logs.SlowQueryKind))
}

func TestDeepCopy(t *testing.T) {
	t.Run("log fragments are copied, not aliased", func(t *testing.T) {
		cluster := newCluster()
		cluster.Spec.Logs = &LogsSpec{
			SlowQuery: map[string]interface{}{"enabled": true, "longQueryTime": 2.5},
		}

		copied := cluster.DeepCopy()
		require.NotNil(t, copied.Spec.Logs)
		assert.Equal(t, cluster.Spec.Logs.SlowQuery, copied.Spec.Logs.SlowQuery)

		copied.Spec.Logs.SlowQuery["enabled"] = false
		assert.Equal(t, true, cluster.Spec.Logs.SlowQuery["enabled"])
	})
	t.Run("conditions are copied", func(t *testing.T) {
		cluster := newCluster()
		cluster.Status.Conditions = []metav1.Condition{
			{Type: "LogConfig", Status: metav1.ConditionTrue, Reason: "ResourceCreated"},
		}

		copied := cluster.DeepCopy()
		require.Len(t, copied.Status.Conditions, 1)

		copied.Status.Conditions[0].Status = metav1.ConditionFalse
		assert.Equal(t, metav1.ConditionTrue, cluster.Status.Conditions[0].Status)
	})
	t.Run("DeepCopyObject returns the right type", func(t *testing.T) {
		copied := newCluster().DeepCopyObject()

		_, isCluster := copied.(*InnoDBCluster)
		assert.True(t, isCluster)
	})
}
