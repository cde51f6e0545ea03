package wizard

import (
	"context"
	"fmt"
	"net/url"

	"compound-setup/internal/config"
)

// Status prints the current configuration and whether each nightly job is
// registered. It never writes anything.
func (w *Wizard) Status(ctx context.Context) error {
	c := w.console
	c.Section("Compound Learning Status")

	path := w.ConfigPath()
	exists, err := config.Exists(w.fs, path)
	if err != nil {
		return err
	}

	c.Heading("Configuration:")
	if !exists {
		c.Failure("No config file at " + path)
		c.Info("Run compound-setup to create it")
	} else {
		s, err := config.Load(w.fs, path)
		if err != nil {
			return err
		}
		c.Entry("Location:", path)
		c.Entry("Webhook: ", maskWebhook(s.WebhookURL))
		c.Entry("Claude:  ", s.ClaudeModel)
		c.Entry("OpenCode:", s.OpencodeModel)
	}
	c.Blank()

	c.Heading(fmt.Sprintf("Jobs (%s):", w.scheduler.Name()))
	statuses, err := w.scheduler.Verify(ctx)
	if err != nil {
		c.Failure(fmt.Sprintf("Could not query %s: %v", w.scheduler.Name(), err))
		return nil
	}
	for _, st := range statuses {
		if st.Installed {
			c.Success(fmt.Sprintf("%s (%s) installed", st.Job.Label, st.Job.Time))
		} else {
			c.Failure(fmt.Sprintf("%s (%s) not installed", st.Job.Label, st.Job.Time))
		}
	}
	return nil
}

// maskWebhook hides the token part of a webhook URL, keeping scheme and host.
func maskWebhook(raw string) string {
	if raw == "" {
		return "(not set)"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "(set)"
	}
	return u.Scheme + "://" + u.Host + "/…"
}
