package wizard

import (
	"path/filepath"

	"compound-setup/internal/installer"
)

// LogDir is where the nightly jobs write their logs.
func (w *Wizard) LogDir() string {
	return filepath.Join(w.env.Home, "git", "logs")
}

// summary prints the closing screen.
func (w *Wizard) summary() {
	c := w.console
	jobs := installer.Jobs()

	c.Header()
	c.Section("Setup Complete ✓")

	c.Rule()
	c.Blank()
	c.Heading("Configuration:")
	c.Entry("Location:", w.ConfigPath())
	c.Blank()

	c.Heading("System Paths:")
	c.Entry("Scripts:   ", filepath.Join(w.env.Root, "scripts")+"/")
	c.Entry("Logs:      ", w.LogDir()+"/")
	c.Entry("Reports:   ", filepath.Join(w.env.Root, "reports")+"/")
	c.Blank()

	c.Heading("What Happens Next:")
	for _, job := range jobs {
		c.Entry(job.Time, "- "+job.Purpose)
	}
	c.Entry("Nightly ", "- Discord notifications sent")
	c.Blank()

	c.Heading("Monitor Your System:")
	for _, job := range jobs {
		c.Muted("tail -f " + filepath.Join(w.LogDir(), job.Log))
	}
	c.Blank()

	c.Rule()
	c.Blank()
	c.Text("  🚀 Your codebase will learn and ship every night!")
	c.Blank()
}
