package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amfleurke/mysql-operator/pkg/version"
)

func TestCommonLabels(t *testing.T) {
	labels := CommonLabels("mycluster", LogConfigComponentLabel)

	assert.Equal(t, map[string]string{
		AppNameLabel:      version.AppName,
		AppInstanceLabel:  "mycluster",
		AppComponentLabel: "log-config",
		AppManagedByLabel: version.AppName,
		AppVersionLabel:   version.Version,
	}, labels)
}

func TestMerge(t *testing.T) {
	t.Run("later maps win", func(t *testing.T) {
		merged := Merge(
			map[string]string{"a": "1", "b": "1"},
			map[string]string{"b": "2", "c": "2"},
		)

		assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": "2"}, merged)
	})
	t.Run("no input gives empty map", func(t *testing.T) {
		assert.Empty(t, Merge())
	})
}

func TestNotEqual(t *testing.T) {
	assert.False(t, NotEqual(
		map[string]string{"a": "1"},
		map[string]string{"a": "1"},
	))
	assert.True(t, NotEqual(
		map[string]string{"a": "1"},
		map[string]string{"a": "2"},
	))
	assert.True(t, NotEqual(
		map[string]string{"a": "1"},
		map[string]string{"a": "1", "b": "2"},
	))
}
