package main

import (
	"errors"
	"fmt"

	"github.com/clearframe/clearframe/cmd"

	"github.com/spf13/viper"
)

func configureViper() {
	// read config file
	viper.SetConfigName("clearframe")
	viper.SetConfigType("toml")
	viper.AddConfigPath("/etc/clearframe/")
	viper.AddConfigPath("$HOME/.config/clearframe")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		// a missing config file is fine; everything has defaults
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}
}

func main() {
	configureViper()
	cmd.Execute()
}
