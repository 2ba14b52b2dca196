package mounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
)

func TestGetByName(t *testing.T) {
	mounts := []corev1.VolumeMount{
		{Name: "datadir", MountPath: "/var/lib/mysql"},
		{Name: "general-log-config", MountPath: "/etc/my.cnf.d/general-log.cnf"},
	}

	t.Run("finds mount", func(t *testing.T) {
		mount, err := GetByName(mounts, "general-log-config")

		require.NoError(t, err)
		assert.Equal(t, "/etc/my.cnf.d/general-log.cnf", mount.MountPath)
	})
	t.Run("missing mount is an error", func(t *testing.T) {
		mount, err := GetByName(mounts, "unknown")

		require.Error(t, err)
		assert.Nil(t, mount)
	})
}

func TestIsIn(t *testing.T) {
	mounts := []corev1.VolumeMount{{Name: "datadir"}}

	assert.True(t, IsIn(mounts, "datadir"))
	assert.False(t, IsIn(mounts, "unknown"))
	assert.False(t, IsIn(nil, "datadir"))
}
