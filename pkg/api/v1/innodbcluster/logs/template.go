package logs

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/strategicpatch"
)

// Template abstracts the two shapes a pod template takes during
// reconciliation: an untyped tree that is about to be submitted for creation,
// and a typed PodSpec of an already materialized StatefulSet that is patched
// in place. Merging the same mount into either shape must converge on the same
// result.
type Template interface {
	MergeContainerMount(containerName string, mount corev1.VolumeMount) error
	MergeVolume(volume corev1.Volume) error
}

// TreeTemplate wraps the pod-spec subtree of a workload manifest that has not
// been created yet. Merges are structural strategic-merge patches against the
// PodSpec schema: containers and volumes lists merge by their name key. A
// container's volumeMounts merge by mountPath instead, so same-named mounts
// are evicted before the patch is applied.
type TreeTemplate struct {
	spec map[string]interface{}
}

func NewTreeTemplate(podSpec map[string]interface{}) *TreeTemplate {
	return &TreeTemplate{spec: podSpec}
}

// Spec returns the merged pod-spec tree.
func (template *TreeTemplate) Spec() map[string]interface{} {
	return template.spec
}

func (template *TreeTemplate) MergeContainerMount(containerName string, mount corev1.VolumeMount) error {
	mountTree, err := runtime.DefaultUnstructuredConverter.ToUnstructured(&mount)
	if err != nil {
		return errors.WithStack(err)
	}

	template.evictContainerMount(containerName, mount.Name)

	return template.merge(map[string]interface{}{
		"containers": []interface{}{
			map[string]interface{}{
				"name":         containerName,
				"volumeMounts": []interface{}{mountTree},
			},
		},
	})
}

func (template *TreeTemplate) MergeVolume(volume corev1.Volume) error {
	volumeTree, err := runtime.DefaultUnstructuredConverter.ToUnstructured(&volume)
	if err != nil {
		return errors.WithStack(err)
	}

	return template.merge(map[string]interface{}{
		"volumes": []interface{}{volumeTree},
	})
}

// evictContainerMount drops the named container's volumeMounts sharing the
// given volume name, plus unnamed placeholders. The strategic merge key for
// volumeMounts is mountPath, a renamed config file would otherwise leave the
// stale mount behind.
func (template *TreeTemplate) evictContainerMount(containerName string, volumeName string) {
	containers, hasContainers := template.spec["containers"].([]interface{})
	if !hasContainers {
		return
	}

	for _, entry := range containers {
		container, isTree := entry.(map[string]interface{})
		if !isTree || container["name"] != containerName {
			continue
		}

		mounts, hasMounts := container["volumeMounts"].([]interface{})
		if !hasMounts {
			return
		}

		kept := make([]interface{}, 0, len(mounts))

		for _, mountEntry := range mounts {
			mountTree, isTree := mountEntry.(map[string]interface{})
			if isTree {
				name, _ := mountTree["name"].(string)
				if name == "" || name == volumeName {
					continue
				}
			}

			kept = append(kept, mountEntry)
		}

		container["volumeMounts"] = kept
	}
}

func (template *TreeTemplate) merge(patch map[string]interface{}) error {
	merged, err := strategicpatch.StrategicMergeMapPatch(template.spec, patch, corev1.PodSpec{})
	if err != nil {
		return errors.WithStack(err)
	}

	template.spec = merged

	return nil
}

// TypedTemplate wraps the PodSpec of a StatefulSet fetched from the cluster.
// Merges edit the container and volume lists directly: entries sharing the
// merged name are removed first, then the fresh entry is appended.
type TypedTemplate struct {
	spec *corev1.PodSpec
}

func NewTypedTemplate(podSpec *corev1.PodSpec) *TypedTemplate {
	return &TypedTemplate{spec: podSpec}
}

func (template *TypedTemplate) MergeContainerMount(containerName string, mount corev1.VolumeMount) error {
	for index := range template.spec.Containers {
		container := &template.spec.Containers[index]
		if container.Name != containerName {
			continue
		}

		container.VolumeMounts = append(withoutVolumeMount(container.VolumeMounts, mount.Name), mount)

		return nil
	}

	// no container with that name yet, carry the mount on a fresh entry
	template.spec.Containers = append(template.spec.Containers, corev1.Container{
		Name:         containerName,
		VolumeMounts: []corev1.VolumeMount{mount},
	})

	return nil
}

func (template *TypedTemplate) MergeVolume(volume corev1.Volume) error {
	template.spec.Volumes = append(withoutVolume(template.spec.Volumes, volume.Name), volume)

	return nil
}

// Unnamed entries are dropped alongside the evicted ones, upstream patching
// has been observed to leave empty placeholders in these lists.
func withoutVolume(volumes []corev1.Volume, volumeName string) []corev1.Volume {
	kept := make([]corev1.Volume, 0, len(volumes))

	for _, volume := range volumes {
		if volume.Name == "" || volume.Name == volumeName {
			continue
		}

		kept = append(kept, volume)
	}

	return kept
}

func withoutVolumeMount(mounts []corev1.VolumeMount, volumeName string) []corev1.VolumeMount {
	kept := make([]corev1.VolumeMount, 0, len(mounts))

	for _, mount := range mounts {
		if mount.Name == "" || mount.Name == volumeName {
			continue
		}

		kept = append(kept, mount)
	}

	return kept
}
