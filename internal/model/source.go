// Package model defines the data structures shared by the devkit layers.
package model

// Path represents a file system path.
type Path string

// File represents a source code file on disk.
type File struct {
	ShortPath Path   `yaml:"path" msgpack:"short_path"`
	FullPath  Path   `yaml:"-" msgpack:"full_path"`
	Hash      string `yaml:"hash" msgpack:"hash"`
}

// Source is a discovered file together with the text it held when read.
type Source struct {
	Origin  *File  `yaml:"origin" msgpack:"origin"`
	Content string `yaml:"-" msgpack:"-"`
}

// Path returns the display path of the source, or an empty path when the
// source has no origin.
func (s Source) Path() Path {
	if s.Origin == nil {
		return ""
	}

	if s.Origin.ShortPath != "" {
		return s.Origin.ShortPath
	}

	return s.Origin.FullPath
}
