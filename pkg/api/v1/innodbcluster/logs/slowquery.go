package logs

import (
	"strconv"
	"strings"

	"github.com/amfleurke/mysql-operator/pkg/api/shared/document"
)

// SlowQueryLog manages the MySQL slow query log.
type SlowQueryLog struct {
	ConfigMount

	enabled       *bool
	collect       bool
	longQueryTime *float64
	fileName      string
	prefix        string
}

func NewSlowQueryLog() *SlowQueryLog {
	return &SlowQueryLog{
		ConfigMount: ConfigMount{
			VolumeName: "slow-query-log-config",
			FileName:   "slow-query-log.cnf",
			MountPath:  MySQLConfDir,
		},
		fileName: "slow_query.log",
	}
}

func (slowLog *SlowQueryLog) Kind() Kind {
	return SlowQueryKind
}

func (slowLog *SlowQueryLog) Parse(fragment map[string]interface{}, prefix string) error {
	if len(fragment) == 0 {
		return nil
	}

	slowLog.prefix = prefix

	if _, isSet := fragment["enabled"]; isSet {
		enabled, err := document.Bool(fragment, "enabled", prefix)
		if err != nil {
			return err
		}

		slowLog.enabled = &enabled
	}

	// the CRD declares longQueryTime as a number, so it may arrive as either
	// an integer or a fraction
	if _, isSet := fragment["longQueryTime"]; isSet {
		longQueryTime, err := document.Float(fragment, "longQueryTime", prefix)
		if err != nil {
			return err
		}

		slowLog.longQueryTime = &longQueryTime
	}

	if _, isSet := fragment["collect"]; isSet {
		collect, err := document.Bool(fragment, "collect", prefix)
		if err != nil {
			return err
		}

		slowLog.collect = collect
	}

	return nil
}

func (slowLog *SlowQueryLog) Validate() error {
	if slowLog.longQueryTime != nil && *slowLog.longQueryTime < 0 {
		return document.NewSpecError("%s.longQueryTime must not be negative", slowLog.prefix)
	}

	if slowLog.collect && !slowLog.isEnabled() {
		return document.NewSpecError("%s.collect is enabled while %s.enabled is not", slowLog.prefix, slowLog.prefix)
	}

	return nil
}

func (slowLog *SlowQueryLog) isEnabled() bool {
	return slowLog.enabled != nil && *slowLog.enabled
}

func (slowLog *SlowQueryLog) ConfigMapData() map[string]string {
	var cnf strings.Builder

	cnf.WriteString("[mysqld]\n")
	cnf.WriteString("slow_query_log=")
	cnf.WriteString(onOff(slowLog.isEnabled()))

	if slowLog.isEnabled() {
		cnf.WriteString("\nslow_query_log_file='")
		cnf.WriteString(slowLog.fileName)
		cnf.WriteString("'\nlog_slow_admin_statements=1")

		if slowLog.longQueryTime != nil && *slowLog.longQueryTime != 0 {
			cnf.WriteString("\nlong_query_time=")
			cnf.WriteString(strconv.FormatFloat(*slowLog.longQueryTime, 'f', -1, 64))
		}
	}

	return map[string]string{slowLog.FileName: cnf.String()}
}
