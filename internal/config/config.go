package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configPathKey     = "EXPENSE_TRACKER_CONFIG"
	defaultConfigFile = "config.yaml"
)

type config struct {
	Storage StorageConfig `yaml:"storage"`
	App     AppConfig     `yaml:"app"`
}

type Service struct {
	config config
}

// New reads the yaml config named by EXPENSE_TRACKER_CONFIG (config.yaml
// by default). A missing file is not an error: the tool runs on defaults
// in a bare working directory.
func New() (*Service, error) {
	s := &Service{config: defaults()}

	path := os.Getenv(configPathKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func defaults() config {
	return config{
		Storage: StorageConfig{FilePath: defaultStorageFile},
		App: AppConfig{
			CurrencySymbolName: defaultCurrencySymbol,
			ConfirmDeleteFlag:  true,
		},
	}
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}
