// Package util is a grab bag for config and log file plumbing.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending, falling back to discard on failure.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	var err error
	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Printf("warning: %s\n", err.Error())
		file = io.Discard
	}

	return
}

func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}

// LoadConfig unmarshals yaml from path into cfg, leaving unset fields alone.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	err = errors.Wrapf(err, "failed to unmarshal")
	return
}

// SampleConfig writes cfg as yaml to path unless a file is already there.
func SampleConfig(cfg any, path string, mode os.FileMode) (written bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return // already have a cfg
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(path, data, mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}

	written = true
	return
}
