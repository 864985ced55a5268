package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"medreminder/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath             = "."
	defaultPort             = 8080
	defaultSessionTTL       = 24 * time.Hour
	defaultStorageDir       = "./data"
	defaultCustomersKey     = "customers.json"
	defaultPrescriptionsKey = "prescriptions.json"
	defaultScanInterval     = 30 * time.Second
	defaultAutoDismissAfter = 10 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage configuration for the customer and prescription collections
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Reminder configuration for the reminder scheduler
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for reminder event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where the two collections are kept
type StorageConfig struct {
	// Local directory holding the collection files (opened with fileblob)
	Dir string `json:"dir" yaml:"dir"`

	// Any gocloud.dev/blob URL (file://, mem://, gs://). Takes precedence over Dir when set.
	URL string `json:"url" yaml:"url"`

	// Object key of the customer collection
	CustomersKey string `json:"customersKey" yaml:"customersKey"`

	// Object key of the prescription collection
	PrescriptionsKey string `json:"prescriptionsKey" yaml:"prescriptionsKey"`
}

// ReminderConfig defines the reminder scheduler windows and cadence
type ReminderConfig struct {
	// How often the scheduler scans for due prescriptions
	ScanInterval time.Duration `json:"scanInterval" yaml:"scanInterval"`

	// Quiet period after a dismissed reminder
	SnoozeWindow time.Duration `json:"snoozeWindow" yaml:"snoozeWindow"`

	// Suppression pushed ahead when the customer views the prescription
	ViewWindow time.Duration `json:"viewWindow" yaml:"viewWindow"`

	// An unanswered prompt is closed (and counts as dismissed) after this long
	AutoDismissAfter time.Duration `json:"autoDismissAfter" yaml:"autoDismissAfter"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for reminder event publishing
type PubSubConfig struct {
	// Provider type: "google" for Google Pub/Sub, "local" for HTTP push simulation, empty to disable
	Provider string `json:"provider" yaml:"provider"`

	// Local endpoint URL (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: REMINDER_SNOOZEWINDOW -> reminder.snoozeWindow (not reminder.snoozewindow)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section and zero value with its default.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.Dir) == "" && strings.TrimSpace(cfg.Storage.URL) == "" {
		cfg.Storage.Dir = defaultStorageDir
	}
	if cfg.Storage.CustomersKey == "" {
		cfg.Storage.CustomersKey = defaultCustomersKey
	}
	if cfg.Storage.PrescriptionsKey == "" {
		cfg.Storage.PrescriptionsKey = defaultPrescriptionsKey
	}

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{}
	}
	if cfg.Reminder.ScanInterval <= 0 {
		cfg.Reminder.ScanInterval = defaultScanInterval
	}
	if cfg.Reminder.SnoozeWindow <= 0 {
		cfg.Reminder.SnoozeWindow = entity.DefaultSnoozeWindow
	}
	if cfg.Reminder.ViewWindow <= 0 {
		cfg.Reminder.ViewWindow = entity.DefaultViewWindow
	}
	if cfg.Reminder.AutoDismissAfter <= 0 {
		cfg.Reminder.AutoDismissAfter = defaultAutoDismissAfter
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
