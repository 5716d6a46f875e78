// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/biogo/pcr/ipcress"
)

// config holds the settings resolved from flags, environment and
// config file.
type config struct {
	// ipcress executable, found on PATH when empty
	Ipcress string `mapstructure:"ipcress"`

	Seed     int `mapstructure:"seed"`
	Memory   int `mapstructure:"memory"`
	Mismatch int `mapstructure:"mismatch"`

	// FASTA line width
	Width int `mapstructure:"width"`

	// entrez settings
	Email   string `mapstructure:"email"`
	Retries int    `mapstructure:"retries"`
}

func init() {
	viper.SetDefault("ipcress", "ipcress")
	viper.SetDefault("seed", ipcress.DefaultParams.Seed)
	viper.SetDefault("memory", ipcress.DefaultParams.Memory)
	viper.SetDefault("mismatch", ipcress.DefaultParams.Mismatch)
	viper.SetDefault("width", 60)
	viper.SetDefault("retries", 5)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("simpcr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("simpcr")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil {
		logger.Printf("using config file %s", viper.ConfigFileUsed())
		return
	}
	var notFound viper.ConfigFileNotFoundError
	if cfgFile != "" || !errors.As(err, &notFound) {
		logger.Fatalf("failed to read config: %v", err)
	}
}

// newConfig returns the current settings. Parameter ranges are checked
// here so that the ipcress package receives only valid values.
func newConfig() (config, error) {
	var c config
	err := viper.Unmarshal(&c)
	if err != nil {
		return c, fmt.Errorf("unable to decode config: %v", err)
	}
	return c, c.validate()
}

func (c config) validate() error {
	switch {
	case c.Seed < 0:
		return fmt.Errorf("seed must be non-negative: %d", c.Seed)
	case c.Memory < 1:
		return fmt.Errorf("memory must be at least 1: %d", c.Memory)
	case c.Mismatch < 0:
		return fmt.Errorf("mismatch must be non-negative: %d", c.Mismatch)
	case c.Width < 0:
		return fmt.Errorf("width must be non-negative: %d", c.Width)
	}
	return nil
}

func (c config) params() ipcress.Params {
	return ipcress.Params{Seed: c.Seed, Memory: c.Memory, Mismatch: c.Mismatch}
}
