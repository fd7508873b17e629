// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/graphkit/config"
)

// Input holds the persistent flags of one command tree.
type Input struct {
	verbose    bool
	configPath string
	storePath  string
	output     string

	cfg config.Config
}

// storeFile is the database path after flag overrides.
func (i *Input) storeFile() string {
	if i.storePath != "" {
		return i.storePath
	}
	return i.cfg.Store.Path
}
