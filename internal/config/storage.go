package config

const defaultStorageFile = "expenses.txt"

type StorageConfig struct {
	FilePath string `yaml:"file"`
}

func (s *StorageConfig) File() string {
	return s.FilePath
}
