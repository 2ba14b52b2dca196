package mounts

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
)

func GetByName(mounts []corev1.VolumeMount, volumeName string) (*corev1.VolumeMount, error) {
	for index := range mounts {
		if mounts[index].Name == volumeName {
			return &mounts[index], nil
		}
	}

	return nil, errors.Errorf(`Cannot find volume mount "%s" in the provided slice (len %d)`,
		volumeName, len(mounts),
	)
}

func IsIn(mounts []corev1.VolumeMount, volumeName string) bool {
	for _, mount := range mounts {
		if mount.Name == volumeName {
			return true
		}
	}

	return false
}
