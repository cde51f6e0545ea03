package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"compound-setup/internal/logger"
	"compound-setup/internal/ui"
)

// cronInstaller is the repository script that writes both crontab entries.
const cronInstaller = "setup-claude-scheduling.sh"

// Cron registers the jobs in the user's crontab through the repository's installer script.
type Cron struct {
	env  Env
	run  Runner
	jobs []Job
}

func (c *Cron) Name() string { return "cron" }

func (c *Cron) Artifacts() string { return "cron jobs" }

// Install runs scripts/setup-claude-scheduling.sh. Its output is only logged at debug level.
func (c *Cron) Install(ctx context.Context) error {
	script := filepath.Join(c.env.Root, "scripts", cronInstaller)
	output, err := c.run.Run(ctx, script)
	logger.Debug("[DEBUG] %s output:\n%s\n", cronInstaller, output)
	if err != nil {
		return fmt.Errorf("run %s: %w", script, err)
	}
	return nil
}

// Verify looks for each job's script in `crontab -l`.
func (c *Cron) Verify(ctx context.Context) ([]JobStatus, error) {
	output, err := c.run.Run(ctx, "crontab", "-l")
	if err != nil {
		return nil, fmt.Errorf("crontab -l: %w", err)
	}
	return matchJobs(c.jobs, string(output), func(j Job) string { return j.Script }), nil
}

func (c *Cron) Guide(con *ui.Console) {
	con.Blank()
	con.Heading("Schedule:")
	for _, job := range c.jobs {
		con.Entry(fmt.Sprintf("%-11s", job.Cron), fmt.Sprintf("→ %s (%s)", job.Title, job.Time))
	}
	con.Blank()
	con.Command("View jobs:", "crontab -l")
	con.Command("Edit jobs:", "crontab -e")
}

// containsWord reports whether word occurs in text as a whole
// whitespace- or slash-delimited token. Lines starting with # are
// commented-out crontab entries and never match.
func containsWord(text, word string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == '/' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, f := range fields {
			if f == word {
				return true
			}
		}
	}
	return false
}
