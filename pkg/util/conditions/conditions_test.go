package conditions

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const testConditionType = "LogConfig"

func TestSetKubeAPIError(t *testing.T) {
	t.Run("sets condition from error", func(t *testing.T) {
		conditions := []metav1.Condition{}

		SetKubeAPIError(&conditions, testConditionType, errors.New("boom"))

		condition := meta.FindStatusCondition(conditions, testConditionType)
		require.NotNil(t, condition)
		assert.Equal(t, metav1.ConditionFalse, condition.Status)
		assert.Equal(t, KubeAPIErrorReason, condition.Reason)
		assert.Contains(t, condition.Message, "boom")
	})
	t.Run("nil error is a no-op", func(t *testing.T) {
		conditions := []metav1.Condition{}

		SetKubeAPIError(&conditions, testConditionType, nil)

		assert.Empty(t, conditions)
	})
}

func TestSetInvalidSpec(t *testing.T) {
	conditions := []metav1.Condition{}

	SetInvalidSpec(&conditions, testConditionType, errors.New("spec.logs.error.verbosity must be between 1 and 3"))

	condition := meta.FindStatusCondition(conditions, testConditionType)
	require.NotNil(t, condition)
	assert.Equal(t, metav1.ConditionFalse, condition.Status)
	assert.Equal(t, InvalidSpecReason, condition.Reason)
	assert.Equal(t, "spec.logs.error.verbosity must be between 1 and 3", condition.Message)
}

func TestSetResourceCreated(t *testing.T) {
	t.Run("sets condition", func(t *testing.T) {
		conditions := []metav1.Condition{}

		SetResourceCreated(&conditions, testConditionType, "mycluster-log-config")

		condition := meta.FindStatusCondition(conditions, testConditionType)
		require.NotNil(t, condition)
		assert.Equal(t, metav1.ConditionTrue, condition.Status)
		assert.Equal(t, ResourceCreatedReason, condition.Reason)
		assert.Equal(t, "mycluster-log-config created/updated", condition.Message)
	})
	t.Run("overwrites a previous failure condition", func(t *testing.T) {
		conditions := []metav1.Condition{}

		SetInvalidSpec(&conditions, testConditionType, errors.New("bad"))
		SetResourceCreated(&conditions, testConditionType, "mycluster-log-config")

		require.Len(t, conditions, 1)
		assert.Equal(t, ResourceCreatedReason, conditions[0].Reason)
	})
}

func TestSetResourceOutdated(t *testing.T) {
	conditions := []metav1.Condition{}

	SetResourceOutdated(&conditions, testConditionType, "mycluster-log-config")

	condition := meta.FindStatusCondition(conditions, testConditionType)
	require.NotNil(t, condition)
	assert.Equal(t, metav1.ConditionFalse, condition.Status)
	assert.Equal(t, ResourceOutdatedReason, condition.Reason)
}
