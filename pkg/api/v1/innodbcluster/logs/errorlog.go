package logs

import (
	"strconv"
	"strings"

	"github.com/amfleurke/mysql-operator/pkg/api/shared/document"
)

const (
	defaultErrorLogVerbosity = 3

	minErrorLogVerbosity = 1
	maxErrorLogVerbosity = 3
)

// ErrorLog manages the MySQL error log. Unlike the other categories the error
// log cannot be turned off, only its verbosity and collection are configurable.
type ErrorLog struct {
	ConfigMount

	collect   bool
	verbosity int
	fileName  string
	prefix    string
}

func NewErrorLog() *ErrorLog {
	return &ErrorLog{
		ConfigMount: ConfigMount{
			VolumeName: "error-log-config",
			FileName:   "error-log.cnf",
			MountPath:  MySQLConfDir,
		},
		verbosity: defaultErrorLogVerbosity,
		fileName:  "error.log",
	}
}

func (errorLog *ErrorLog) Kind() Kind {
	return ErrorKind
}

func (errorLog *ErrorLog) Parse(fragment map[string]interface{}, prefix string) error {
	if len(fragment) == 0 {
		return nil
	}

	errorLog.prefix = prefix

	if _, isSet := fragment["verbosity"]; isSet {
		verbosity, err := document.Int(fragment, "verbosity", prefix)
		if err != nil {
			return err
		}

		errorLog.verbosity = verbosity
	}

	if _, isSet := fragment["collect"]; isSet {
		collect, err := document.Bool(fragment, "collect", prefix)
		if err != nil {
			return err
		}

		errorLog.collect = collect
	}

	return nil
}

func (errorLog *ErrorLog) Validate() error {
	if errorLog.verbosity < minErrorLogVerbosity || errorLog.verbosity > maxErrorLogVerbosity {
		return document.NewSpecError("%s.verbosity must be between %d and %d", errorLog.prefix, minErrorLogVerbosity, maxErrorLogVerbosity)
	}

	return nil
}

func (errorLog *ErrorLog) ConfigMapData() map[string]string {
	var cnf strings.Builder

	cnf.WriteString("[mysqld]\n")
	cnf.WriteString("log_error_verbosity=")
	cnf.WriteString(strconv.Itoa(errorLog.verbosity))

	if errorLog.collect {
		cnf.WriteString("\nlog_error='")
		cnf.WriteString(errorLog.fileName)
		cnf.WriteString("'\nlog_error_services='log_sink_json'")
	}

	return map[string]string{errorLog.FileName: cnf.String()}
}
