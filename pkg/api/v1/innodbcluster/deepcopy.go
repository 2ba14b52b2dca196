package innodbcluster

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// Deepcopy is maintained by hand: the untyped log fragments in LogsSpec are
// outside what controller-gen can handle, they are copied via DeepCopyJSON.

func (in *InnoDBCluster) DeepCopyInto(out *InnoDBCluster) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

func (in *InnoDBCluster) DeepCopy() *InnoDBCluster {
	if in == nil {
		return nil
	}

	out := new(InnoDBCluster)
	in.DeepCopyInto(out)

	return out
}

func (in *InnoDBCluster) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}

	return nil
}

func (in *InnoDBClusterList) DeepCopyInto(out *InnoDBClusterList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)

	if in.Items != nil {
		items := make([]InnoDBCluster, len(in.Items))
		for index := range in.Items {
			in.Items[index].DeepCopyInto(&items[index])
		}

		out.Items = items
	}
}

func (in *InnoDBClusterList) DeepCopy() *InnoDBClusterList {
	if in == nil {
		return nil
	}

	out := new(InnoDBClusterList)
	in.DeepCopyInto(out)

	return out
}

func (in *InnoDBClusterList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}

	return nil
}

func (in *InnoDBClusterSpec) DeepCopyInto(out *InnoDBClusterSpec) {
	*out = *in
	out.Logs = in.Logs.DeepCopy()
}

func (in *InnoDBClusterSpec) DeepCopy() *InnoDBClusterSpec {
	if in == nil {
		return nil
	}

	out := new(InnoDBClusterSpec)
	in.DeepCopyInto(out)

	return out
}

func (in *LogsSpec) DeepCopy() *LogsSpec {
	if in == nil {
		return nil
	}

	return &LogsSpec{
		Error:     deepCopyFragment(in.Error),
		General:   deepCopyFragment(in.General),
		SlowQuery: deepCopyFragment(in.SlowQuery),
	}
}

func (in *InnoDBClusterStatus) DeepCopyInto(out *InnoDBClusterStatus) {
	*out = *in

	if in.Conditions != nil {
		conditions := make([]metav1.Condition, len(in.Conditions))
		for index := range in.Conditions {
			in.Conditions[index].DeepCopyInto(&conditions[index])
		}

		out.Conditions = conditions
	}
}

func (in *InnoDBClusterStatus) DeepCopy() *InnoDBClusterStatus {
	if in == nil {
		return nil
	}

	out := new(InnoDBClusterStatus)
	in.DeepCopyInto(out)

	return out
}

func deepCopyFragment(fragment map[string]interface{}) map[string]interface{} {
	if fragment == nil {
		return nil
	}

	return runtime.DeepCopyJSON(fragment)
}
