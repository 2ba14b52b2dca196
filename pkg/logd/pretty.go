package logd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const errorVerboseKey = "errorVerbose"

type prettyLogWriter struct {
	out io.Writer
}

type PrettyLogWriterOption func(*prettyLogWriter)

func WithWriter(out io.Writer) PrettyLogWriterOption {
	return func(pretty *prettyLogWriter) {
		pretty.out = out
	}
}

// NewPrettyLogWriter returns a writer that unescapes newlines/tabs in zap's JSON
// output and collapses pkg/errors' duplicated errorVerbose field into the
// stacktrace field. Non-JSON payloads pass through untouched.
func NewPrettyLogWriter(options ...PrettyLogWriterOption) io.Writer {
	pretty := &prettyLogWriter{out: os.Stdout}
	for _, option := range options {
		option(pretty)
	}

	return pretty
}

func (pretty *prettyLogWriter) Write(payload []byte) (int, error) {
	message := string(payload)

	payload, err := replaceDuplicatedStacktrace(payload)
	if err != nil {
		return fmt.Fprint(pretty.out, message)
	}

	return fmt.Fprint(pretty.out, prettify(payload))
}

func prettify(payload []byte) string {
	message := string(payload)
	message = strings.ReplaceAll(message, "\\n", "\n")
	message = strings.ReplaceAll(message, "\\t", "\t")

	return message
}

func replaceDuplicatedStacktrace(payload []byte) ([]byte, error) {
	var document map[string]interface{}

	err := json.Unmarshal(payload, &document)
	if err != nil {
		// If message is not json, just write without modification
		return nil, errors.WithStack(err)
	}

	errorVerbose, hasErrorVerbose := document[errorVerboseKey]
	if hasErrorVerbose {
		document[stacktraceKey] = errorVerbose
		delete(document, errorVerboseKey)
	}

	return json.Marshal(document)
}
