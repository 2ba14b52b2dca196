package manager

import (
	"context"
	"net/http"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/config"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	"github.com/amfleurke/mysql-operator/pkg/api/scheme"
	"github.com/amfleurke/mysql-operator/pkg/api/scheme/fake"
	"github.com/amfleurke/mysql-operator/pkg/logd"
)

// TestManager is an inert manager.Manager for tests, every operation succeeds
// without doing anything.
type TestManager struct{}

func (TestManager) GetHTTPClient() *http.Client {
	return http.DefaultClient
}

func (TestManager) GetConfig() *rest.Config {
	return &rest.Config{}
}

func (TestManager) GetCache() cache.Cache {
	return nil
}

func (TestManager) GetScheme() *runtime.Scheme {
	return scheme.Scheme
}

func (TestManager) GetClient() client.Client {
	return fake.NewClient()
}

func (TestManager) GetFieldIndexer() client.FieldIndexer {
	return nil
}

func (TestManager) GetEventRecorderFor(name string) record.EventRecorder {
	return record.NewFakeRecorder(8)
}

func (TestManager) GetRESTMapper() meta.RESTMapper {
	return nil
}

func (TestManager) GetAPIReader() client.Reader {
	return fake.NewClient()
}

func (TestManager) Add(runnable manager.Runnable) error {
	return nil
}

func (TestManager) Elected() <-chan struct{} {
	return make(chan struct{})
}

func (TestManager) AddMetricsServerExtraHandler(path string, handler http.Handler) error {
	return nil
}

func (TestManager) AddHealthzCheck(name string, check healthz.Checker) error {
	return nil
}

func (TestManager) AddReadyzCheck(name string, check healthz.Checker) error {
	return nil
}

func (TestManager) Start(ctx context.Context) error {
	return nil
}

func (TestManager) GetWebhookServer() webhook.Server {
	return nil
}

func (TestManager) GetLogger() logr.Logger {
	return logd.Get().Logger
}

func (TestManager) GetControllerOptions() config.Controller {
	return config.Controller{}
}
