// Package iniconf reads INI (key file) configuration.
//
// Files are read through fileio, so an unreadable file surfaces as a
// FileFailure with the OS error code as its cause. Parsing is done by
// go-ini. Lookups report a missing group or key, or a value that does not
// convert, as a LogicFailure; empty group or key names are an
// InvalidArgumentFailure.
//
// List values are separated by ';':
//
//	[teardown]
//	paths = /run/a.pid;/run/b.pid
package iniconf

import (
	"fmt"

	"github.com/go-ini/ini"

	"github.com/xgx-io/failchain"
	"github.com/xgx-io/failchain/fileio"
)

// ListSeparator separates the elements of list values.
const ListSeparator = ";"

// Config is a parsed INI file. It is safe for concurrent reads.
type Config struct {
	path string
	file *ini.File
}

// Load reads and parses the INI file at path.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, failchain.InvalidArgument("ini file name must not be empty", nil)
	}
	data, err := fileio.ReadBinary(path)
	if err != nil {
		return nil, failchain.File(fmt.Sprintf(`could not load ini file "%s"`, path), 0, err)
	}
	return parse(path, data)
}

// Parse parses INI text held in memory. name is used in failure reasons and
// returned by Path.
func Parse(name string, data []byte) (*Config, error) {
	return parse(name, data)
}

func parse(path string, data []byte) (*Config, error) {
	// ';' separates list elements, so it cannot start an inline comment.
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, failchain.Logic(fmt.Sprintf(`could not parse ini file "%s"`, path), err)
	}
	return &Config{path: path, file: f}, nil
}

// Path returns the name the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// Groups returns the group names in file order.
func (c *Config) Groups() []string {
	var out []string
	for _, s := range c.file.Sections() {
		if s.Name() == ini.DefaultSection {
			continue
		}
		out = append(out, s.Name())
	}
	return out
}

// StartGroup returns the first group in the file, or "" if there is none.
func (c *Config) StartGroup() string {
	if groups := c.Groups(); len(groups) > 0 {
		return groups[0]
	}
	return ""
}

// HasGroup reports whether group exists.
func (c *Config) HasGroup(group string) bool {
	if group == "" || group == ini.DefaultSection {
		return false
	}
	_, err := c.file.GetSection(group)
	return err == nil
}

// HasKey reports whether key exists in group. A missing group has no keys.
func (c *Config) HasKey(group, key string) bool {
	if !c.HasGroup(group) {
		return false
	}
	return c.file.Section(group).HasKey(key)
}

// Keys returns the key names of group in file order.
func (c *Config) Keys(group string) ([]string, error) {
	sec, err := c.section(group, "list of keys")
	if err != nil {
		return nil, err
	}
	return sec.KeyStrings(), nil
}

// String returns the raw value of key in group.
func (c *Config) String(group, key string) (string, error) {
	k, err := c.key(group, key, "string value")
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// Bool returns the value of key in group as a boolean.
func (c *Config) Bool(group, key string) (bool, error) {
	const what = "boolean value"
	k, err := c.key(group, key, what)
	if err != nil {
		return false, err
	}
	v, err := k.Bool()
	if err != nil {
		return false, c.conversion(what, group, key, err)
	}
	return v, nil
}

// Int returns the value of key in group as an integer.
func (c *Config) Int(group, key string) (int, error) {
	const what = "integer value"
	k, err := c.key(group, key, what)
	if err != nil {
		return 0, err
	}
	v, err := k.Int()
	if err != nil {
		return 0, c.conversion(what, group, key, err)
	}
	return v, nil
}

// Strings returns the ';'-separated elements of key in group.
func (c *Config) Strings(group, key string) ([]string, error) {
	k, err := c.key(group, key, "string array")
	if err != nil {
		return nil, err
	}
	if k.String() == "" {
		return []string{}, nil
	}
	return k.Strings(ListSeparator), nil
}

// Ints returns the ';'-separated elements of key in group as integers.
func (c *Config) Ints(group, key string) ([]int, error) {
	const what = "integer array"
	k, err := c.key(group, key, what)
	if err != nil {
		return nil, err
	}
	if k.String() == "" {
		return []int{}, nil
	}
	v, err := k.StrictInts(ListSeparator)
	if err != nil {
		return nil, c.conversion(what, group, key, err)
	}
	return v, nil
}

// Bools returns the ';'-separated elements of key in group as booleans.
func (c *Config) Bools(group, key string) ([]bool, error) {
	const what = "boolean array"
	k, err := c.key(group, key, what)
	if err != nil {
		return nil, err
	}
	if k.String() == "" {
		return []bool{}, nil
	}
	v, err := k.StrictBools(ListSeparator)
	if err != nil {
		return nil, c.conversion(what, group, key, err)
	}
	return v, nil
}

func (c *Config) section(group, what string) (*ini.Section, error) {
	if group == "" {
		return nil, failchain.InvalidArgument("group name must not be empty", nil)
	}
	if !c.HasGroup(group) {
		return nil, failchain.Logic(fmt.Sprintf(`could not get %s: group "%s" not found in "%s"`, what, group, c.path), nil)
	}
	return c.file.Section(group), nil
}

func (c *Config) key(group, key, what string) (*ini.Key, error) {
	if key == "" {
		return nil, failchain.InvalidArgument("key name must not be empty", nil)
	}
	sec, err := c.section(group, what)
	if err != nil {
		return nil, err
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return nil, failchain.Logic(fmt.Sprintf(`could not get %s: key "%s" not found in group "%s"`, what, key, group), err)
	}
	return k, nil
}

func (c *Config) conversion(what, group, key string, err error) error {
	return failchain.Logic(fmt.Sprintf(`could not get %s: key "%s" in group "%s" does not convert`, what, key, group), err)
}
