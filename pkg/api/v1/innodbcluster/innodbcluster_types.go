package innodbcluster

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// InnoDBClusterSpec defines the desired state of an InnoDB cluster.
type InnoDBClusterSpec struct {
	// Number of MySQL server instances in the cluster (the default value is: 3)
	Instances int32 `json:"instances,omitempty"`

	// MySQL server version to deploy
	Version string `json:"version,omitempty"`

	// Name of the secret holding the root account credentials
	SecretName string `json:"secretName,omitempty"`

	// Declarative configuration of the MySQL server logs
	Logs *LogsSpec `json:"logs,omitempty"`
}

// LogsSpec carries the per-category log configuration. The fragments are kept
// untyped on purpose: they are parsed through the document extractors so the
// tri-state booleans and int-or-float numbers of the CRD keep their document
// semantics.
type LogsSpec struct {
	// Error log verbosity and collection
	// +kubebuilder:pruning:PreserveUnknownFields
	Error map[string]interface{} `json:"error,omitempty"`

	// General query log switch and collection
	// +kubebuilder:pruning:PreserveUnknownFields
	General map[string]interface{} `json:"general,omitempty"`

	// Slow query log switch, threshold and collection
	// +kubebuilder:pruning:PreserveUnknownFields
	SlowQuery map[string]interface{} `json:"slowQuery,omitempty"`
}

// InnoDBClusterStatus defines the observed state of an InnoDB cluster.
type InnoDBClusterStatus struct {
	// Conditions contains the state of the managed sub-resources
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// InnoDBCluster is the Schema for the InnoDBCluster API
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=innodbclusters,scope=Namespaced,shortName={ic,ics}
// +kubebuilder:printcolumn:name="Instances",type=integer,JSONPath=`.spec.instances`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`
type InnoDBCluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   InnoDBClusterSpec   `json:"spec,omitempty"`
	Status InnoDBClusterStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// InnoDBClusterList contains a list of InnoDBCluster
type InnoDBClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []InnoDBCluster `json:"items"`
}

func init() {
	SchemeBuilder.Register(&InnoDBCluster{}, &InnoDBClusterList{})
}
