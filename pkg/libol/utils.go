package libol

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

func IsYaml(file string) bool {
	return strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml")
}

func Marshal(v interface{}, pretty bool) ([]byte, error) {
	str, err := json.Marshal(v)
	if err != nil {
		Error("Marshal error: %s", err)
		return nil, err
	}
	if !pretty {
		return str, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, str, "", "  "); err != nil {
		return str, nil
	}
	return out.Bytes(), nil
}

func MarshalSave(v interface{}, file string, pretty bool) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	f, err := CreateFile(file)
	if err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	defer f.Close()

	var data []byte
	if IsYaml(file) {
		data, err = yaml.Marshal(v)
	} else {
		data, err = Marshal(v, pretty)
	}
	if err != nil {
		Error("MarshalSave error: %s", err)
		return err
	}
	if _, err := f.Write(data); err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	return nil
}

func FileExist(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return err
	}
	return nil
}

func LoadFile(file string) ([]byte, error) {
	return os.ReadFile(file)
}

func Unmarshal(v interface{}, contents []byte) error {
	if err := json.Unmarshal(contents, v); err != nil {
		return NewErr("%s", err)
	}
	return nil
}

// UnmarshalLoad leaves v untouched when file does not exist.
func UnmarshalLoad(v interface{}, file string) error {
	if err := FileExist(file); err != nil {
		return nil
	}
	contents, err := LoadFile(file)
	if err != nil {
		return NewErr("%s %s", file, err)
	}

	if IsYaml(file) {
		return yaml.Unmarshal(contents, v)
	} else {
		return Unmarshal(v, contents)
	}
}

func CreateFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
}

// WriteExec writes data to path and leaves it executable by everyone.
func WriteExec(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0755); err != nil {
		return err
	}
	return os.Chmod(path, 0755)
}

func RemoveFile(path string) error {
	if err := FileExist(path); err != nil {
		return nil
	}
	return os.Remove(path)
}
