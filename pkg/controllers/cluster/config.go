package cluster

import (
	"github.com/amfleurke/mysql-operator/pkg/logd"
)

const icConditionType = "ServerStatefulSet"

var (
	log = logd.Get().WithName("cluster-controller")
)
