package query

import (
	"context"

	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/amfleurke/mysql-operator/pkg/logd"
)

// Generic is the shared create/update plumbing for the typed kubeobjects
// packages. MustRecreate is optional, objects with immutable fields provide it.
type Generic[T client.Object, L client.ObjectList] struct {
	Target       T
	ListTarget   L
	ToList       func(L) []T
	IsEqual      func(T, T) bool
	MustRecreate func(current, desired T) bool

	KubeClient client.Client
	KubeReader client.Reader
	Log        logd.Logger
}

func (c Generic[T, L]) Get(ctx context.Context, objectKey client.ObjectKey) (T, error) {
	err := c.KubeReader.Get(ctx, objectKey, c.Target)

	return c.Target, err
}

func (c Generic[T, L]) Create(ctx context.Context, object T) error {
	c.Log.Info("creating", "kind", object.GetObjectKind(), "name", object.GetName(), "namespace", object.GetNamespace())

	return errors.WithStack(c.KubeClient.Create(ctx, object))
}

func (c Generic[T, L]) Update(ctx context.Context, object T) error {
	c.Log.Info("updating", "kind", object.GetObjectKind(), "name", object.GetName(), "namespace", object.GetNamespace())

	return errors.WithStack(c.KubeClient.Update(ctx, object))
}

func (c Generic[T, L]) Delete(ctx context.Context, object T) error {
	c.Log.Info("deleting", "kind", object.GetObjectKind(), "name", object.GetName(), "namespace", object.GetNamespace())

	err := c.KubeClient.Delete(ctx, object)

	return errors.WithStack(client.IgnoreNotFound(err))
}

// CreateOrUpdate reconciles the given object against the cluster and reports
// whether anything was written.
func (c Generic[T, L]) CreateOrUpdate(ctx context.Context, newObject T) (bool, error) {
	currentObject, err := c.Get(ctx, client.ObjectKeyFromObject(newObject))
	if err != nil && client.IgnoreNotFound(err) == nil {
		err = c.Create(ctx, newObject)
		if err != nil {
			return false, err
		}

		return true, nil
	} else if err != nil {
		return false, errors.WithStack(err)
	}

	if c.IsEqual(currentObject, newObject) {
		c.Log.Debug("update not needed, no changes detected", "name", newObject.GetName(), "namespace", newObject.GetNamespace())

		return false, nil
	}

	if c.MustRecreate != nil && c.MustRecreate(currentObject, newObject) {
		c.Log.Info("recreation needed, immutable change detected", "name", newObject.GetName(), "namespace", newObject.GetNamespace())

		err := c.Recreate(ctx, newObject)
		if err != nil {
			return false, err
		}

		return true, nil
	}

	newObject.SetResourceVersion(currentObject.GetResourceVersion())

	err = c.Update(ctx, newObject)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (c Generic[T, L]) Recreate(ctx context.Context, object T) error {
	err := c.Delete(ctx, object)
	if err != nil {
		return err
	}

	object.SetResourceVersion("")

	return c.Create(ctx, object)
}
