/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assess",
	Short: "Analytical Stokes solutions in cylindrical and spherical shells",
	Long: `
Evaluates closed form solutions of the Stokes equations in 2D cylindrical
and 3D spherical shell domains, driven by delta function or smooth radial
forcing under free-slip, zero-slip or mixed boundary conditions.

assess cylinder -I case.yaml`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.assess.yaml)")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile of the evaluation loop")
}

// startProfile honors the --profile flag; the returned stop function is a
// no-op when profiling is off.
func startProfile(cmd *cobra.Command) func() {
	if on, _ := cmd.Flags().GetBool("profile"); on {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		return p.Stop
	}
	return func() {}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".assess" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".assess")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
