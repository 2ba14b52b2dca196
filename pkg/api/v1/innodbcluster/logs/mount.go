package logs

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"
)

const (
	// MySQLConfDir is where the rendered my.cnf drop-ins are mounted inside the
	// server container.
	MySQLConfDir = "/etc/my.cnf.d"

	configFileMode int32 = 0644
)

// ConfigMount identifies one config-file-backed mount. The VolumeName doubles
// as the identity used for deduplication, so it has to stay stable across
// reconciliation passes.
type ConfigMount struct {
	VolumeName string
	FileName   string
	MountPath  string
}

func (mount ConfigMount) volume(configMapName string) corev1.Volume {
	return corev1.Volume{
		Name: mount.VolumeName,
		VolumeSource: corev1.VolumeSource{
			ConfigMap: &corev1.ConfigMapVolumeSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: configMapName},
				DefaultMode:          ptr.To(configFileMode),
				Items: []corev1.KeyToPath{
					{
						Key:  mount.FileName,
						Path: mount.FileName,
					},
				},
			},
		},
	}
}

func (mount ConfigMount) volumeMount() corev1.VolumeMount {
	return corev1.VolumeMount{
		Name:      mount.VolumeName,
		MountPath: mount.MountPath + "/" + mount.FileName,
		SubPath:   mount.FileName,
	}
}

// AddToTemplate merges the volume and the container volume-mount for this
// config file into the given pod template. The container step runs before the
// volume step. Repeated calls converge on a single volume/mount pair per
// VolumeName, stale entries with the same name are evicted first.
func (mount ConfigMount) AddToTemplate(template Template, containerName string, configMapName string) error {
	err := template.MergeContainerMount(containerName, mount.volumeMount())
	if err != nil {
		return err
	}

	return template.MergeVolume(mount.volume(configMapName))
}
