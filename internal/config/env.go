// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envLayerDefaultTag disables envDefault while overlaying the environment
// on a loaded section: an unset variable leaves the field as the file or the
// defaults left it.
const envLayerDefaultTag = "envLayerDefault"

type envSection struct {
	index  int
	name   string
	prefix string
}

var envSections = collectEnvSections()

func collectEnvSections() []envSection {
	t := reflect.TypeFor[TempConfigStore]()

	sections := make([]envSection, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		prefix := f.Tag.Get("envPrefix")
		if prefix == "" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		sections = append(sections, envSection{index: i, name: name, prefix: prefix})
	}

	return sections
}

// owner returns the section whose prefix is the longest prefix of key.
func owner(key string) (envSection, bool) {
	var (
		best  envSection
		found bool
	)
	for _, s := range envSections {
		if strings.HasPrefix(key, s.prefix) && len(s.prefix) > len(best.prefix) {
			best, found = s, true
		}
	}
	return best, found
}

// applyEnv overlays environ (as returned by env.ToMap) on store. Sections
// owning at least one variable are allocated with their defaults when the
// file did not configure them; only variables that are set overwrite fields,
// so an explicit false or zero from the environment wins over the file.
func applyEnv(store *TempConfigStore, environ map[string]string) error {
	owned := make(map[int]bool)
	for key := range environ {
		if s, ok := owner(key); ok {
			owned[s.index] = true
		}
	}

	v := reflect.ValueOf(store).Elem()

	for _, s := range envSections {
		if !owned[s.index] {
			continue
		}

		field := v.Field(s.index)
		section := field
		if field.IsNil() {
			var err error
			if section, err = newSection(field.Type().Elem()); err != nil {
				return fmt.Errorf("error getting env configs for %s: %w", s.name, err)
			}
		}

		opts := env.Options{
			Environment:         environ,
			Prefix:              s.prefix,
			DefaultValueTagName: envLayerDefaultTag,
		}
		if err := env.ParseWithOptions(section.Interface(), opts); err != nil {
			return fmt.Errorf("error getting env configs for %s: %w", s.name, err)
		}
		field.Set(section)
	}

	return nil
}

// newSection allocates a section of type t holding its envDefault values.
func newSection(t reflect.Type) (reflect.Value, error) {
	section := reflect.New(t)
	if err := env.ParseWithOptions(section.Interface(), env.Options{Environment: map[string]string{}}); err != nil {
		return reflect.Value{}, fmt.Errorf("error parsing defaults of %s: %w", t.Name(), err)
	}
	return section, nil
}

// withDefaults returns a store where every section present in layout is
// allocated with its defaults and every other section is nil.
func withDefaults(layout *TempConfigStore) (*TempConfigStore, error) {
	store := new(TempConfigStore)
	src := reflect.ValueOf(layout).Elem()
	dst := reflect.ValueOf(store).Elem()

	for i := range src.NumField() {
		if src.Field(i).IsNil() {
			continue
		}
		section, err := newSection(src.Field(i).Type().Elem())
		if err != nil {
			return nil, err
		}
		dst.Field(i).Set(section)
	}

	return store, nil
}
