package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"compound-setup/internal/logger"
	"compound-setup/internal/ui"
)

// Paths baked into the plist templates. The repository placeholder lives under
// the home placeholder, so it has to be rewritten first.
const (
	placeholderRepo = "/Users/vitruvius/git/compound-learning-system"
	placeholderHome = "/Users/vitruvius"
)

// ErrNoDescriptors is returned when no job descriptor ends up in the agent directory.
var ErrNoDescriptors = errors.New("no launch agent descriptors installed")

// Launchd installs the jobs as per-user launch agents.
type Launchd struct {
	env  Env
	fs   afero.Fs
	run  Runner
	jobs []Job
}

func (l *Launchd) Name() string { return "launchd" }

// Artifacts is what gets copied into LaunchAgents.
func (l *Launchd) Artifacts() string { return "launchd plists" }

// AgentDir returns ~/Library/LaunchAgents.
func (l *Launchd) AgentDir() string {
	return filepath.Join(l.env.Home, "Library", "LaunchAgents")
}

// TemplateDir returns the repository directory holding the plist templates.
func (l *Launchd) TemplateDir() string {
	return filepath.Join(l.env.Root, "config", "launchd")
}

// Install copies each available template into the agent directory with its
// placeholder paths rewritten, then asks launchd to load every descriptor present.
// Missing templates are skipped. Load failures are tolerated because the agent
// is usually already loaded from a previous run.
func (l *Launchd) Install(ctx context.Context) error {
	agentDir := l.AgentDir()
	if err := l.fs.MkdirAll(agentDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", agentDir, err)
	}

	for _, job := range l.jobs {
		src := filepath.Join(l.TemplateDir(), job.Plist())
		ok, err := afero.Exists(l.fs, src)
		if err != nil {
			return fmt.Errorf("stat %s: %w", src, err)
		}
		if !ok {
			logger.Debug("[DEBUG] Template %s not found, skipping\n", src)
			continue
		}
		if err := l.installDescriptor(src, filepath.Join(agentDir, job.Plist())); err != nil {
			return err
		}
	}

	loaded := 0
	for _, job := range l.jobs {
		plist := filepath.Join(agentDir, job.Plist())
		if ok, _ := afero.Exists(l.fs, plist); !ok {
			continue
		}
		loaded++
		if output, err := l.run.Run(ctx, "launchctl", "load", plist); err != nil {
			logger.Debug("[DEBUG] launchctl load %s: %v\nOutput: %s\n", plist, err, output)
		}
	}
	if loaded == 0 {
		return fmt.Errorf("%w in %s", ErrNoDescriptors, agentDir)
	}
	return nil
}

// installDescriptor copies src to dst, rewriting the placeholder paths.
func (l *Launchd) installDescriptor(src, dst string) error {
	data, err := afero.ReadFile(l.fs, src)
	if err != nil {
		return fmt.Errorf("read template %s: %w", src, err)
	}

	data = bytes.ReplaceAll(data, []byte(placeholderRepo), []byte(l.env.Root))
	data = bytes.ReplaceAll(data, []byte(placeholderHome), []byte(l.env.Home))

	if err := afero.WriteFile(l.fs, dst, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	logger.Debug("[DEBUG] Installed %s\n", dst)
	return nil
}

// Verify looks for each job label in `launchctl list`.
func (l *Launchd) Verify(ctx context.Context) ([]JobStatus, error) {
	output, err := l.run.Run(ctx, "launchctl", "list")
	if err != nil {
		return nil, fmt.Errorf("launchctl list: %w", err)
	}
	return matchJobs(l.jobs, string(output), func(j Job) string { return j.Label }), nil
}

func (l *Launchd) Guide(con *ui.Console) {
	con.Blank()
	con.Heading("Services:")
	for _, job := range l.jobs {
		con.Entry(fmt.Sprintf("%-20s", job.Label), fmt.Sprintf("→ %s (%s)", job.Title, job.Time))
	}
	con.Blank()
	con.Command("View status:", "launchctl list | grep compound")
	con.Command("Unload:", "launchctl unload ~/Library/LaunchAgents/com.compound.*.plist")
}
