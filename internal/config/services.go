package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MountPaginate переопределяет постраничную выдачу для одного сервиса.
type MountPaginate struct {
	Default int `yaml:"default"`
	Max     int `yaml:"max"`
}

// ServiceMount связывает URL-путь с семейством ресурсов Unsplash.
type ServiceMount struct {
	Path     string         `yaml:"path"`
	Kind     string         `yaml:"kind"`
	Paginate *MountPaginate `yaml:"paginate,omitempty"`
}

type servicesFile struct {
	Services []ServiceMount `yaml:"services"`
}

// defaultKinds — все ресурсы, которые монтируются без SERVICES_FILE.
var defaultKinds = []string{
	"collections",
	"collection-photos",
	"related-collections",
	"photos",
	"photo-track",
	"photo-statistics",
	"topics",
	"topic-photos",
	"users",
	"user-likes",
	"user-photos",
}

// DefaultServices возвращает встроенную таблицу: /unsplash/<kind>.
func DefaultServices() []ServiceMount {
	mounts := make([]ServiceMount, 0, len(defaultKinds))
	for _, kind := range defaultKinds {
		mounts = append(mounts, ServiceMount{Path: "/unsplash/" + kind, Kind: kind})
	}
	return mounts
}

// LoadServices читает таблицу сервисов из YAML-файла.
// Пустой путь означает встроенную таблицу.
func LoadServices(path string) ([]ServiceMount, error) {
	if path == "" {
		return DefaultServices(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read services file: %w", err)
	}
	return ParseServices(raw)
}

// ParseServices разбирает YAML вида:
//
//	services:
//	  - path: /photos
//	    kind: photos
//	    paginate: {default: 20, max: 50}
func ParseServices(raw []byte) ([]ServiceMount, error) {
	var file servicesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse services file: %w", err)
	}
	if len(file.Services) == 0 {
		return nil, fmt.Errorf("services file declares no services")
	}

	seen := make(map[string]struct{}, len(file.Services))
	for i := range file.Services {
		m := &file.Services[i]
		m.Path = "/" + strings.Trim(strings.TrimSpace(m.Path), "/")
		m.Kind = strings.TrimSpace(m.Kind)

		if m.Path == "/" || m.Kind == "" {
			return nil, fmt.Errorf("service #%d: path and kind are required", i+1)
		}
		if _, dup := seen[m.Path]; dup {
			return nil, fmt.Errorf("service #%d: duplicate path %q", i+1, m.Path)
		}
		if m.Paginate != nil && (m.Paginate.Default < 0 || m.Paginate.Max < 0) {
			return nil, fmt.Errorf("service %q: paginate values must not be negative", m.Path)
		}
		seen[m.Path] = struct{}{}
	}
	return file.Services, nil
}
