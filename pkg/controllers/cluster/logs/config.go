package logs

import (
	"github.com/amfleurke/mysql-operator/pkg/logd"
)

const lcConditionType = "LogConfig"

var (
	log = logd.Get().WithName("cluster-logs")
)
