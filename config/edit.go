package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/anipeek/anipeek/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// UnknownKeyError is returned for keys that are not registered.
type UnknownKeyError struct {
	Key string
	// Suggestion is the registered key closest to Key.
	Suggestion string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Suggestion)
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, &UnknownKeyError{Key: k, Suggestion: closest}
}

// Parse converts raw command line values to the type of the field's default.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("no value given")
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q for %s", raw[0], f.Key)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value %q for %s", raw[0], f.Key)
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s has an unsupported type %T", f.Key, f.Value)
	}
}

// Set parses raw for k, applies it and saves the config file.
func Set(k string, raw []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	value, err := field.Parse(raw)
	if err != nil {
		return nil, err
	}

	viper.Set(k, value)
	return value, Write()
}

// ResetKeys restores the given keys, or every key when none are given, and saves.
func ResetKeys(keys ...string) error {
	if len(keys) == 0 {
		keys = lo.Keys(Default)
	}

	for _, k := range keys {
		field, err := Lookup(k)
		if err != nil {
			return err
		}
		viper.Set(k, field.Value)
	}

	return Write()
}

// Write saves the configuration, creating the file when there is none yet.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(where.ConfigFile())
	}

	return err
}
