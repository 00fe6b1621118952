package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
)

// Config describes which files a Runner processes and how.
type Config struct {
	// InputDir holds the source images.
	InputDir string

	// OutputDir receives the scanned images. It is created if missing.
	OutputDir string

	// Prefix is the file name before the sequence number.
	Prefix string

	// Ext is the file extension, including the dot. It also selects the
	// output encoding.
	Ext string

	// First and Last bound the sequence numbers, both inclusive.
	First int
	Last  int

	// Workers is the maximum number of files processed at once.
	Workers int

	// Parallel selects the row-parallel scan for each image.
	Parallel bool

	// Debug adds per-step timings to the progress log.
	Debug bool
}

// DefaultConfig returns the configuration for the original nine-image set.
func DefaultConfig() Config {
	return Config{
		InputDir:  "../input",
		OutputDir: "../output",
		Prefix:    "rhinozelfant",
		Ext:       ".png",
		First:     1,
		Last:      9,
		Workers:   1,
	}
}

// Validate reports the first problem with c, or nil.
func (c Config) Validate() error {
	switch {
	case c.InputDir == "":
		return errors.New("input directory is required")
	case c.OutputDir == "":
		return errors.New("output directory is required")
	case c.Prefix == "":
		return errors.New("file prefix is required")
	case c.First > c.Last:
		return fmt.Errorf("first index %d is greater than last index %d", c.First, c.Last)
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Job is one input file and the path its result is written to.
type Job struct {
	Index      int
	Name       string
	InputPath  string
	OutputPath string
}

// Jobs lists the files described by c in sequence order.
func (c Config) Jobs() []Job {
	if c.First > c.Last {
		return nil
	}
	jobs := make([]Job, 0, c.Last-c.First+1)
	for i := c.First; i <= c.Last; i++ {
		name := c.Prefix + strconv.Itoa(i)
		jobs = append(jobs, Job{
			Index:      i,
			Name:       name,
			InputPath:  filepath.Join(c.InputDir, name+c.Ext),
			OutputPath: filepath.Join(c.OutputDir, name+c.Ext),
		})
	}
	return jobs
}
