// Package store loads the static reference tables the classifier depends on:
// the merchant dictionary and the category keyword rules. Tables come from
// YAML files when present, otherwise from the compiled-in defaults, and are
// read-only once loaded.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"

	"gopkg.in/yaml.v3"
)

// ReferenceStore resolves and loads the classifier's reference tables.
type ReferenceStore struct {
	CategoriesFile string
	MerchantsFile  string
	logger         logging.Logger
}

// NewReferenceStore creates a store reading from the given file names. Empty
// names fall back to categories.yaml / merchants.yaml in the standard
// locations.
func NewReferenceStore(categoriesFile, merchantsFile string, logger logging.Logger) *ReferenceStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReferenceStore{
		CategoriesFile: categoriesFile,
		MerchantsFile:  merchantsFile,
		logger:         logger,
	}
}

// findConfigFile looks for a configuration file in the standard locations:
// the working directory, ./config, and ~/.config/statement-parser.
func (s *ReferenceStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(homeDir, ".config", "statement-parser", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadCategories returns the category keyword rules, in declared order.
func (s *ReferenceStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := s.findConfigFile(filename)
	if err != nil {
		s.logger.WithField(logging.FieldFile, filename).
			Debug("Categories file not found, using built-in defaults")
		return DefaultCategories(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path resolved from known config locations
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var wrapper struct {
		Categories []models.CategoryConfig `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	if len(wrapper.Categories) == 0 {
		return DefaultCategories(), nil
	}
	return wrapper.Categories, nil
}

// LoadMerchants returns the merchant dictionary.
func (s *ReferenceStore) LoadMerchants() ([]models.MerchantInfo, error) {
	filename := s.MerchantsFile
	if filename == "" {
		filename = "merchants.yaml"
	}

	path, err := s.findConfigFile(filename)
	if err != nil {
		s.logger.WithField(logging.FieldFile, filename).
			Debug("Merchants file not found, using built-in defaults")
		return DefaultMerchants(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path resolved from known config locations
	if err != nil {
		return nil, fmt.Errorf("error reading merchants file: %w", err)
	}

	var wrapper struct {
		Merchants []models.MerchantInfo `yaml:"merchants"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("error parsing merchants file: %w", err)
	}

	if len(wrapper.Merchants) == 0 {
		return DefaultMerchants(), nil
	}
	return wrapper.Merchants, nil
}
