package logs

import (
	"context"

	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster"
	logsapi "github.com/amfleurke/mysql-operator/pkg/api/v1/innodbcluster/logs"
	"github.com/amfleurke/mysql-operator/pkg/monitoring"
	"github.com/amfleurke/mysql-operator/pkg/util/conditions"
	k8sconfigmap "github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/configmap"
	"github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/labels"
	k8sstatefulset "github.com/amfleurke/mysql-operator/pkg/util/kubeobjects/statefulset"
)

type Reconciler struct {
	client    client.Client
	apiReader client.Reader
	cluster   *innodbcluster.InnoDBCluster
}

func NewReconciler(clt client.Client,
	apiReader client.Reader,
	cluster *innodbcluster.InnoDBCluster) *Reconciler {
	return &Reconciler{
		client:    clt,
		apiReader: apiReader,
		cluster:   cluster,
	}
}

// Reconcile renders the log ConfigMap and merges the config-file mounts into
// the server StatefulSet, if one has been created already. During first-time
// creation the cluster controller merges the mounts into the not-yet-submitted
// template via AddMountsToTemplate instead.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	logSpecs, err := r.parseSpecs()
	if err != nil {
		conditions.SetInvalidSpec(r.cluster.Conditions(), lcConditionType, err)
		monitoring.RecordLogConfigError(r.cluster.Name, r.cluster.Namespace)

		return err
	}

	err = r.reconcileConfigMap(ctx, logSpecs)
	if err != nil {
		return err
	}

	return r.reconcileStatefulSetMounts(ctx, logSpecs)
}

// AddMountsToTemplate merges the config-file mounts into the pod-spec tree of
// a StatefulSet that is about to be created.
func (r *Reconciler) AddMountsToTemplate(template *logsapi.TreeTemplate) error {
	logSpecs, err := r.parseSpecs()
	if err != nil {
		conditions.SetInvalidSpec(r.cluster.Conditions(), lcConditionType, err)

		return err
	}

	return addMounts(template, logSpecs, r.cluster.LogConfigMapName())
}

func (r *Reconciler) parseSpecs() ([]logsapi.Spec, error) {
	logSpecs := logsapi.NewSpecs()

	for _, logSpec := range logSpecs {
		prefix := innodbcluster.LogsFieldPath(logSpec.Kind())

		err := logSpec.Parse(r.cluster.LogsFragment(logSpec.Kind()), prefix)
		if err != nil {
			return nil, err
		}

		err = logSpec.Validate()
		if err != nil {
			return nil, err
		}
	}

	return logSpecs, nil
}

func (r *Reconciler) reconcileConfigMap(ctx context.Context, logSpecs []logsapi.Spec) error {
	data := map[string]string{}

	for _, logSpec := range logSpecs {
		for fileName, content := range logSpec.ConfigMapData() {
			data[fileName] = content
		}
	}

	coreLabels := labels.CommonLabels(r.cluster.Name, labels.LogConfigComponentLabel)

	newConfigMap, err := k8sconfigmap.Build(r.cluster, r.cluster.LogConfigMapName(), data, k8sconfigmap.SetLabels(coreLabels))
	if err != nil {
		return err
	}

	query := k8sconfigmap.Query(r.client, r.apiReader, log)

	changed, err := query.CreateOrUpdate(ctx, newConfigMap)
	if err != nil {
		conditions.SetKubeAPIError(r.cluster.Conditions(), lcConditionType, err)

		return err
	} else if changed {
		conditions.SetResourceOutdated(r.cluster.Conditions(), lcConditionType, newConfigMap.Name)
	}

	conditions.SetResourceCreated(r.cluster.Conditions(), lcConditionType, newConfigMap.Name)
	monitoring.RecordLogConfigRender(r.cluster.Name, r.cluster.Namespace)

	return nil
}

func (r *Reconciler) reconcileStatefulSetMounts(ctx context.Context, logSpecs []logsapi.Spec) error {
	query := k8sstatefulset.Query(r.client, r.apiReader, log)

	statefulSet, err := query.Get(ctx, types.NamespacedName{Name: r.cluster.StatefulSetName(), Namespace: r.cluster.Namespace})
	if err != nil {
		if client.IgnoreNotFound(err) == nil {
			log.Debug("no server StatefulSet yet, mounts are merged during template rendering",
				"cluster", r.cluster.Name, "namespace", r.cluster.Namespace)

			return nil
		}

		conditions.SetKubeAPIError(r.cluster.Conditions(), lcConditionType, err)

		return err
	}

	previousSpec := statefulSet.Spec.Template.Spec.DeepCopy()

	err = addMounts(logsapi.NewTypedTemplate(&statefulSet.Spec.Template.Spec), logSpecs, r.cluster.LogConfigMapName())
	if err != nil {
		return err
	}

	if equality.Semantic.DeepEqual(previousSpec, &statefulSet.Spec.Template.Spec) {
		log.Debug("config-file mounts already up to date", "cluster", r.cluster.Name, "namespace", r.cluster.Namespace)

		return nil
	}

	err = query.Update(ctx, statefulSet)
	if err != nil {
		conditions.SetKubeAPIError(r.cluster.Conditions(), lcConditionType, err)

		return err
	}

	return nil
}

func addMounts(template logsapi.Template, logSpecs []logsapi.Spec, configMapName string) error {
	for _, logSpec := range logSpecs {
		err := logSpec.AddToTemplate(template, innodbcluster.MySQLContainerName, configMapName)
		if err != nil {
			return err
		}
	}

	return nil
}
