//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"flag"
	"os"
	"path/filepath"
)

// Configuration holds the command-line settings.
type Configuration struct {
	ShowVersion bool
	UseLogFile  bool
	LogFilePath string
}

// InitConfig parses the command line. The remaining positional argument,
// if any, names the file to edit.
func InitConfig() (*Configuration, []string) {
	config := &Configuration{}
	flag.BoolVar(&config.ShowVersion, "version", false, "print the version and exit")
	flag.BoolVar(&config.UseLogFile, "log", false, "write a debug log")
	flag.StringVar(&config.LogFilePath, "log-path", "", "debug log location (default $HOME/.thorlog)")
	flag.Parse()
	if config.LogFilePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		config.LogFilePath = filepath.Join(home, ".thorlog")
	}
	return config, flag.Args()
}
