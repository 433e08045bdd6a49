package utils

import (
	"fmt"
	"reflect"
	"unicode"

	log "github.com/sirupsen/logrus"
)

const maskedValue = "*****"

// PrintConfig logs every exported leaf of config as a dotted key. Fields tagged
// `sensitive` are masked unless empty.
func PrintConfig(config interface{}) {
	log.Info("Loaded configuration:")
	printStruct("", reflect.ValueOf(config))
}

func printStruct(prefix string, v reflect.Value) {
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key := lowerFirst(field.Name)
		if prefix != "" {
			key = prefix + "." + key
		}
		value := v.Field(i)
		if value.Kind() == reflect.Ptr && value.IsNil() {
			log.Infof("%s=<nil>", key)
			continue
		}
		value = reflect.Indirect(value)
		if value.Kind() == reflect.Struct {
			printStruct(key, value)
			continue
		}
		_, sensitive := field.Tag.Lookup("sensitive")
		log.Infof("%s=%s", key, formatValue(value, sensitive))
	}
}

func formatValue(value reflect.Value, sensitive bool) string {
	if sensitive {
		if value.IsZero() || (value.Kind() == reflect.Slice && value.Len() == 0) {
			return ""
		}
		return maskedValue
	}
	if value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.Uint8 {
		return fmt.Sprintf("<%d bytes>", value.Len())
	}
	return fmt.Sprintf("%v", value.Interface())
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}
