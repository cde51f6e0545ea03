// Package installer registers the nightly compound-learning jobs with the
// host's job supervisor: cron on Linux, launchd on macOS.
//
// Installation is best effort. Strategies report failures as errors, which
// the wizard prints as warnings before moving on; nothing is retried or rolled
// back. Re-running an install is safe.
package installer

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"compound-setup/internal/ui"
)

// Env holds the runtime paths the strategies work against.
// - Home: the operator's home directory ("~" when HOME is unset).
// - Root: the repository checkout holding scripts/ and config/launchd/.
type Env struct {
	Home string
	Root string
}

// Scheduler is one way of registering the nightly jobs.
type Scheduler interface {
	// Name is the supervisor name, e.g. "cron".
	Name() string
	// Artifacts names what Install registers, e.g. "cron jobs".
	Artifacts() string
	// Install registers the jobs. A non-nil error is non-fatal to the caller.
	Install(ctx context.Context) error
	// Verify reports, per catalog job, whether the supervisor knows about it.
	Verify(ctx context.Context) ([]JobStatus, error)
	// Guide prints the schedule and the commands to inspect or remove the jobs.
	Guide(c *ui.Console)
}

// New returns the Scheduler for p.
func New(p Platform, env Env, fs afero.Fs, run Runner) (Scheduler, error) {
	switch p {
	case Linux:
		return &Cron{env: env, run: run, jobs: Jobs()}, nil
	case MacOS:
		return &Launchd{env: env, fs: fs, run: run, jobs: Jobs()}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}
}

// matchJobs marks each job as installed when its key appears in listing.
func matchJobs(jobs []Job, listing string, key func(Job) string) []JobStatus {
	statuses := make([]JobStatus, 0, len(jobs))
	for _, job := range jobs {
		statuses = append(statuses, JobStatus{
			Job:       job,
			Installed: containsWord(listing, key(job)),
		})
	}
	return statuses
}
