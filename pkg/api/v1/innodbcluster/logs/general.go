package logs

import (
	"strings"

	"github.com/amfleurke/mysql-operator/pkg/api/shared/document"
)

// GeneralLog manages the MySQL general query log.
type GeneralLog struct {
	ConfigMount

	enabled  *bool
	collect  bool
	fileName string
	prefix   string
}

func NewGeneralLog() *GeneralLog {
	return &GeneralLog{
		ConfigMount: ConfigMount{
			VolumeName: "general-log-config",
			FileName:   "general-log.cnf",
			MountPath:  MySQLConfDir,
		},
		fileName: "general_query.log",
	}
}

func (generalLog *GeneralLog) Kind() Kind {
	return GeneralKind
}

func (generalLog *GeneralLog) Parse(fragment map[string]interface{}, prefix string) error {
	if len(fragment) == 0 {
		return nil
	}

	generalLog.prefix = prefix

	if _, isSet := fragment["enabled"]; isSet {
		enabled, err := document.Bool(fragment, "enabled", prefix)
		if err != nil {
			return err
		}

		generalLog.enabled = &enabled
	}

	if _, isSet := fragment["collect"]; isSet {
		collect, err := document.Bool(fragment, "collect", prefix)
		if err != nil {
			return err
		}

		generalLog.collect = collect
	}

	return nil
}

func (generalLog *GeneralLog) Validate() error {
	if generalLog.collect && !generalLog.isEnabled() {
		return document.NewSpecError("%s.collect is enabled while %s.enabled is not", generalLog.prefix, generalLog.prefix)
	}

	return nil
}

func (generalLog *GeneralLog) isEnabled() bool {
	return generalLog.enabled != nil && *generalLog.enabled
}

func (generalLog *GeneralLog) ConfigMapData() map[string]string {
	var cnf strings.Builder

	cnf.WriteString("[mysqld]\n")
	cnf.WriteString("general_log=")
	cnf.WriteString(onOff(generalLog.isEnabled()))

	if generalLog.isEnabled() {
		cnf.WriteString("\ngeneral_log_file=")
		cnf.WriteString(generalLog.fileName)
	}

	return map[string]string{generalLog.FileName: cnf.String()}
}

func onOff(enabled bool) string {
	if enabled {
		return "1"
	}

	return "0"
}
