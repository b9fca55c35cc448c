package resource

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var props = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// init loads application properties from YAML. The file path can be
// overridden with PROPERTIES_FILE_PATH; otherwise configs/application.yml is
// searched for starting at the working directory and walking up, so packages
// under test resolve the same bundle as the server binary.
func init() {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = locate("configs/application.yml")
	}
	Init(path)
}

func Init(path string) {
	props.SetConfigFile(path)
	props.SetConfigType("yml")

	if err := props.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}

	resolved := make(map[string]any)
	resolveMap("", props.AllSettings(), resolved)

	if err := props.MergeConfigMap(resolved); err != nil {
		log.Fatalf("Fail to merge properties: %v", err)
	}
}

// locate walks up from the working directory until the relative path exists.
func locate(rel string) string {
	dir, err := os.Getwd()
	if err != nil {
		return rel
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return rel
}

// resolveMap flattens the YAML tree into dotted keys, resolving
// ${ENV_NAME:default} placeholders in string values.
func resolveMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolvePlaceholder(v)
		case map[string]any:
			resolveMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolvePlaceholder substitutes a ${ENV:default} pattern with the
// environment value, falling back to the default. Plain strings pass through.
func resolvePlaceholder(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}
	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return props.Get(key)
}

func GetString(key string) string {
	return props.GetString(key)
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetInt(key string) int {
	return props.GetInt(key)
}

func GetInt64(key string) int64 {
	return props.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return props.GetFloat64(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

func GetStringSlice(key string) []string {
	return props.GetStringSlice(key)
}
