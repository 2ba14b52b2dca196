// Package fake wraps the controller-runtime fake client with the operator's
// scheme, so tests do not rebuild the scheme by hand.
package fake

import (
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme"
	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster"
)

func NewClient(initObjs ...client.Object) client.WithWatch {
	return fake.NewClientBuilder().
		WithScheme(scheme.Scheme).
		WithObjects(initObjs...).
		WithStatusSubresource(&innodbcluster.InnoDBCluster{}).
		Build()
}
