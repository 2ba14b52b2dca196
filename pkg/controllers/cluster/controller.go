package cluster

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/manager"

	"github.com/amfleurke/mysql-operator/pkg/api/shared/document"
	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster"
	"github.com/amfleurke/mysql-operator/pkg/controllers/cluster/logs"
	"github.com/amfleurke/mysql-operator/pkg/monitoring"
	"github.com/amfleurke/mysql-operator/pkg/util/conditions"
	k8sstatefulset "github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/statefulset"
)

// Controller reconciles InnoDBCluster resources.
type Controller struct {
	client    client.Client
	apiReader client.Reader
}

func NewController(mgr manager.Manager) *Controller {
	return &Controller{
		client:    mgr.GetClient(),
		apiReader: mgr.GetAPIReader(),
	}
}

func (controller *Controller) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&innodbcluster.InnoDBCluster{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&corev1.ConfigMap{}).
		Complete(controller)
}

// +kubebuilder:rbac:groups=mysql.amfleurke.com,resources=innodbclusters,verbs=get;list;watch
// +kubebuilder:rbac:groups=mysql.amfleurke.com,resources=innodbclusters/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=apps,resources=statefulsets,verbs=get;list;watch;create;update;delete
// +kubebuilder:rbac:groups="",resources=configmaps,verbs=get;list;watch;create;update;delete

func (controller *Controller) Reconcile(ctx context.Context, request ctrl.Request) (ctrl.Result, error) {
	log.Info("reconciling InnoDBCluster", "name", request.Name, "namespace", request.Namespace)

	cluster := &innodbcluster.InnoDBCluster{}

	err := controller.apiReader.Get(ctx, request.NamespacedName, cluster)
	if k8serrors.IsNotFound(err) {
		monitoring.ForgetCluster(request.Name, request.Namespace)

		return ctrl.Result{}, nil
	} else if err != nil {
		return ctrl.Result{}, err
	}

	monitoring.SetClusterInfo(cluster.Name, cluster.Namespace)

	err = controller.reconcileCluster(ctx, cluster)

	statusErr := controller.updateStatus(ctx, cluster)
	if err == nil {
		err = statusErr
	}

	if document.IsSpecError(err) {
		// a requeue cannot fix an invalid specification, the failure is kept
		// visible in the status conditions until the user corrects it
		log.Info("invalid InnoDBCluster specification", "name", cluster.Name, "namespace", cluster.Namespace, "reason", err.Error())

		return ctrl.Result{}, nil
	}

	return ctrl.Result{}, err
}

func (controller *Controller) reconcileCluster(ctx context.Context, cluster *innodbcluster.InnoDBCluster) error {
	logsReconciler := logs.NewReconciler(controller.client, controller.apiReader, cluster)

	err := logsReconciler.Reconcile(ctx)
	if err != nil {
		return err
	}

	return controller.ensureStatefulSet(ctx, cluster, logsReconciler)
}

// ensureStatefulSet creates the server StatefulSet on first reconciliation.
// The log config mounts are merged into the pod-spec tree before submission;
// later passes patch the live object in place through the logs reconciler.
func (controller *Controller) ensureStatefulSet(ctx context.Context, cluster *innodbcluster.InnoDBCluster, logsReconciler *logs.Reconciler) error {
	query := k8sstatefulset.Query(controller.client, controller.apiReader, log)

	_, err := query.Get(ctx, types.NamespacedName{Name: cluster.StatefulSetName(), Namespace: cluster.Namespace})
	if err == nil {
		return nil
	} else if client.IgnoreNotFound(err) != nil {
		conditions.SetKubeAPIError(cluster.Conditions(), icConditionType, err)

		return err
	}

	newStatefulSet, err := buildServerStatefulSet(cluster, logsReconciler)
	if err != nil {
		return err
	}

	err = query.Create(ctx, newStatefulSet)
	if err != nil {
		conditions.SetKubeAPIError(cluster.Conditions(), icConditionType, err)

		return err
	}

	conditions.SetResourceCreated(cluster.Conditions(), icConditionType, newStatefulSet.Name)

	return nil
}

func (controller *Controller) updateStatus(ctx context.Context, cluster *innodbcluster.InnoDBCluster) error {
	err := controller.client.Status().Update(ctx, cluster)
	if err != nil {
		log.Error(err, "failed to update InnoDBCluster status", "name", cluster.Name, "namespace", cluster.Namespace)
	}

	return err
}
