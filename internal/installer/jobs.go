package installer

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed jobs.yaml
var catalog []byte

// Job describes one nightly job.
// - Label: launchd label, also the plist base name.
// - Cron/Time: the same schedule as a cron spec and as a wall-clock time.
// - Script: the job script under scripts/, used to recognise its cron entry.
// - Log: log file name under ~/git/logs.
type Job struct {
	Label   string `yaml:"label"`
	Title   string `yaml:"title"`
	Purpose string `yaml:"purpose"`
	Cron    string `yaml:"cron"`
	Time    string `yaml:"time"`
	Script  string `yaml:"script"`
	Log     string `yaml:"log"`
}

// Plist returns the job descriptor file name.
func (j Job) Plist() string {
	return j.Label + ".plist"
}

// JobStatus reports whether a job was found registered with the supervisor.
type JobStatus struct {
	Job       Job
	Installed bool
}

// Jobs returns the embedded job catalog. The catalog ships with the binary,
// so a decode failure is a programming error and panics.
func Jobs() []Job {
	jobs, err := parseJobs(catalog)
	if err != nil {
		panic("Failed to unmarshal jobs.yaml: " + err.Error())
	}
	return jobs
}

func parseJobs(data []byte) ([]Job, error) {
	var wrapper struct {
		Jobs []Job `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	if len(wrapper.Jobs) == 0 {
		return nil, fmt.Errorf("no jobs defined")
	}
	return wrapper.Jobs, nil
}
