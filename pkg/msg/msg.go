package msg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// init loads the message bundle from YAML. The file path can be overridden
// with MESSAGES_FILE_PATH; otherwise configs/messages.yml is searched for
// starting at the working directory and walking up.
func init() {
	path, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		path = locate("configs/messages.yml")
	}
	Init(path)
}

func Init(path string) {
	bundle := viper.New()
	bundle.SetConfigFile(path)
	bundle.SetConfigType("yml")

	if err := bundle.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	if messages == nil {
		messages = make(map[string]string)
	}
	flatten("", bundle.AllSettings(), messages)
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

// flatten reads the YAML tree recursively into dotted message keys.
func flatten(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			flatten(fullKey, v, result)
		default:
			log.Printf("Ignoring message key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message registered under key with {0}-style
// placeholders replaced by the given arguments. Non-primitive arguments are
// rendered as JSON.
func GetMessage(key string, args ...any) string {
	message, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, stringify(arg))
	}
	return message
}

func stringify(arg any) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
