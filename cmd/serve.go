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
	"github.com/spf13/cobra"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
	"github.com/notargets/gostreaming/server"
)

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Websocket service computing streaming fields for a browser client",
	Long: `
Listens for {"type":"simulate","config":{...},"n":50,"extent":3} requests on /ws and replies
with the field and the DC layer thickness.

gostreaming serve --addr :8080`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		addr, _ := cmd.Flags().GetString("addr")
		size, _ := cmd.Flags().GetInt("cacheSize")
		cache, err := ElasticStreaming.NewSolutionCache(size)
		if err != nil {
			return
		}
		return server.NewServer(addr, cache).Start()
	},
}

func init() {
	rootCmd.AddCommand(ServeCmd)
	ServeCmd.Flags().String("addr", ":8080", "listen address")
	ServeCmd.Flags().Int("cacheSize", 32, "number of solutions kept in memory")
}
