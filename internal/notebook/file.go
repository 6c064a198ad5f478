// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notebook

import (
	"fmt"
	"os"
	"path/filepath"
)

const outputPerm = 0o644

// TranslateFile reads the notebook at inputPath, translates its markdown
// cells with tr, and writes the result to outputPath. The output is written
// to a temporary file in the same directory and renamed into place, so a
// failure at any step leaves no file at outputPath.
func TranslateFile(tr LineTransformer, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading notebook %s: %w", inputPath, err)
	}

	nb, err := Parse(data)
	if err != nil {
		return fmt.Errorf("parsing notebook %s: %w", inputPath, err)
	}

	nb.Translate(tr)

	out, err := nb.Marshal()
	if err != nil {
		return fmt.Errorf("serializing notebook %s: %w", inputPath, err)
	}

	if err := writeAtomic(outputPath, out); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

// writeAtomic writes data to a temp file next to dest and renames it over
// dest. The temp file is removed on any failure.
func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".nbtranslate-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(outputPerm); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
