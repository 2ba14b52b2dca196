package version

import (
	"fmt"
	"runtime"

	"github.com/amfleurke/mysql-operator/pkg/logd"
)

var (
	// AppName contains the name of the application
	AppName = "mysql-operator"

	// Version contains the version of the operator. Assigned externally.
	Version = "snapshot"

	// Commit indicates the Git commit hash the binary was built from. Assigned externally.
	Commit = ""

	// BuildDate is the date when the binary was built. Assigned externally.
	BuildDate = ""
)

// LogVersion logs metadata about the operator.
func LogVersion() {
	LogVersionToLogger(logd.Get().WithName("version"))
}

func LogVersionToLogger(log logd.Logger) {
	log.Info(AppName,
		"version", Version,
		"gitCommit", Commit,
		"buildDate", BuildDate,
		"goVersion", runtime.Version(),
		"platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}
