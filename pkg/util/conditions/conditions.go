package conditions

import (
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	KubeAPIErrorReason     = "KubeApiError"
	InvalidSpecReason      = "InvalidSpec"
	ResourceCreatedReason  = "ResourceCreated"
	ResourceOutdatedReason = "ResourceOutdated"
)

func SetKubeAPIError(conditions *[]metav1.Condition, conditionType string, err error) {
	if err == nil {
		return
	}

	condition := metav1.Condition{
		Type:    conditionType,
		Status:  metav1.ConditionFalse,
		Reason:  KubeAPIErrorReason,
		Message: "A problem occurred when using the Kubernetes API: " + err.Error(),
	}
	_ = meta.SetStatusCondition(conditions, condition)
}

func SetInvalidSpec(conditions *[]metav1.Condition, conditionType string, err error) {
	if err == nil {
		return
	}

	condition := metav1.Condition{
		Type:    conditionType,
		Status:  metav1.ConditionFalse,
		Reason:  InvalidSpecReason,
		Message: err.Error(),
	}
	_ = meta.SetStatusCondition(conditions, condition)
}

func SetResourceCreated(conditions *[]metav1.Condition, conditionType string, name string) {
	condition := metav1.Condition{
		Type:    conditionType,
		Status:  metav1.ConditionTrue,
		Reason:  ResourceCreatedReason,
		Message: name + " created/updated",
	}
	_ = meta.SetStatusCondition(conditions, condition)
}

// SetResourceOutdated is set transiently while a write is in flight, so the
// condition timestamp moves even when the terminal state stays the same.
func SetResourceOutdated(conditions *[]metav1.Condition, conditionType string, name string) {
	condition := metav1.Condition{
		Type:    conditionType,
		Status:  metav1.ConditionFalse,
		Reason:  ResourceOutdatedReason,
		Message: name + " is outdated",
	}
	_ = meta.SetStatusCondition(conditions, condition)
}
