// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/plottools/base/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported style file encoding / decoding formats
type Formats int32

// The supported style file encoding formats
const (
	None Formats = iota
	TOML
	YAML
	JSON
)

var formatNames = []string{"None", "TOML", "YAML", "JSON"}

func (f Formats) String() string {
	if f < None || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Load returns the style with the given name, which can be either
// a registered preset name (see [Preset]) or the filename of a
// style file in one of the supported formats (see [Open]).
func Load(name string) (Style, error) {
	if st, err := Preset(name); err == nil {
		return st, nil
	}
	if _, err := ExtToFormat(filepath.Ext(name)); err != nil {
		return Style{}, fmt.Errorf("styles.Load: %q is neither a preset nor a style file", name)
	}
	return Open(name)
}

// Open opens a style from the given filename, with the format
// inferred from the extension. Fields absent from the file keep
// their default values.
func Open(filename string) (Style, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return Style{}, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return Style{}, errors.Log(err)
	}
	defer file.Close()
	return Read(file, f)
}

// OpenFS is the version of [Open] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string) (Style, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return Style{}, err
	}
	file, err := fsys.Open(filename)
	if err != nil {
		return Style{}, errors.Log(err)
	}
	defer file.Close()
	return Read(file, f)
}

// Read reads a style from the given reader using the given format.
// Fields absent from the input keep their default values.
func Read(r io.Reader, f Formats) (Style, error) {
	var st Style
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(r).Decode(&st)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&st)
	case JSON:
		err = json.NewDecoder(r).Decode(&st)
	default:
		return Style{}, fmt.Errorf("styles.Read: format %q not valid", f)
	}
	if err != nil {
		return Style{}, err
	}
	st.Defaults()
	return st, nil
}

// Save saves the style to the given filename, with the format
// inferred from the extension.
func Save(st *Style, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(st, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the style to the given writer using the given format.
func Write(st *Style, w io.Writer, f Formats) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(st)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(st); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(st)
	default:
		return fmt.Errorf("styles.Write: format %q not valid", f)
	}
}
