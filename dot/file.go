// SPDX-License-Identifier: MIT

package dot

import (
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphkit/core"
)

// ReadFile parses the DOT file at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dot: open %s", path)
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dot: %s", path)
	}
	return g, nil
}

// WriteFile writes g to path in DOT format, replacing any existing file.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dot: create %s", path)
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "dot: close %s", path)
}
