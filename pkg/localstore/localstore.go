package localstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage определяет контракт локального key-value хранилища клиента.
// Значение - произвольный JSON-блоб (сериализованная коллекция записей).
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

type LocalStorage struct {
	basePath string
}

func New(basePath string) (Storage, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0755); err != nil {
			return nil, fmt.Errorf("не удалось создать директорию локального хранилища: %w", err)
		}
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (s *LocalStorage) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

// Read возвращает nil без ошибки, если ключ ещё не записывался.
func (s *LocalStorage) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (s *LocalStorage) Write(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0644)
}

func (s *LocalStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
