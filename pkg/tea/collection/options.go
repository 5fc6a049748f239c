package collection

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

// Options configures a Collection. Zero fields fall back to defaults.
type Options[V any] struct {
	// Equal decides whether two values differ in Union. Default: reflect.DeepEqual
	Equal func(a, b V) bool
	// Logger receives debug messages on clone/encode failures. Default: logrus standard logger
	Logger log.FieldLogger
	// JSON is the codec used by Clone, ToJSON and FromJSON.
	// Default: jsoniter.ConfigCompatibleWithStandardLibrary
	JSON jsoniter.API
}

func (o Options[V]) GetEqual(defaultEqual func(a, b V) bool) func(a, b V) bool {
	if o.Equal != nil {
		return o.Equal
	}
	return defaultEqual
}

func (o Options[V]) GetLogger(defaultLogger log.FieldLogger) log.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return defaultLogger
}

func (o Options[V]) GetJSON(defaultAPI jsoniter.API) jsoniter.API {
	if o.JSON != nil {
		return o.JSON
	}
	return defaultAPI
}

func deepEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}

// carry keeps the value-independent settings when the value type changes.
func carry[V, U any](o Options[V]) Options[U] {
	return Options[U]{Logger: o.Logger, JSON: o.JSON}
}
