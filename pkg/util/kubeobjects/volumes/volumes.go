package volumes

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
)

func GetByName(volumes []corev1.Volume, volumeName string) (*corev1.Volume, error) {
	for index := range volumes {
		if volumes[index].Name == volumeName {
			return &volumes[index], nil
		}
	}

	return nil, errors.Errorf(`Cannot find volume "%s" in the provided slice (len %d)`,
		volumeName, len(volumes),
	)
}

func IsIn(volumes []corev1.Volume, volumeName string) bool {
	for _, volume := range volumes {
		if volume.Name == volumeName {
			return true
		}
	}

	return false
}
