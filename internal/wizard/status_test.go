package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compound-setup/internal/config"
	"compound-setup/internal/installer"
)

func TestStatus(t *testing.T) {
	h := newHarness(t)
	jobs := installer.Jobs()
	h.sched = &fakeScheduler{statuses: []installer.JobStatus{
		{Job: jobs[0], Installed: true},
		{Job: jobs[1], Installed: false},
	}}
	require.NoError(t, config.Write(h.fs, config.Path(testHome), config.Settings{
		WebhookURL:    "https://discord.com/api/webhooks/1/secret-token",
		ClaudeModel:   "claude-opus-4-5",
		OpencodeModel: "opencode-default",
	}))
	before := snapshot(t, h.fs)

	require.NoError(t, h.wizard("").Status(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "https://discord.com/…")
	assert.NotContains(t, out, "secret-token")
	assert.Contains(t, out, "claude-opus-4-5")
	assert.Contains(t, out, "com.compound.review (11:00 PM) installed")
	assert.Contains(t, out, "com.compound.auto (11:30 PM) not installed")
	assert.Equal(t, before, snapshot(t, h.fs))
}

func TestStatus_NoConfigAndVerifyError(t *testing.T) {
	h := newHarness(t)
	h.sched = &fakeScheduler{verifyErr: errors.New("no crontab for dev")}

	require.NoError(t, h.wizard("").Status(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "No config file at "+config.Path(testHome))
	assert.Contains(t, out, "Could not query cron: no crontab for dev")
}

func TestMaskWebhook(t *testing.T) {
	assert.Equal(t, "(not set)", maskWebhook(""))
	assert.Equal(t, "(set)", maskWebhook("not a url"))
	assert.Equal(t, "https://discord.com/…", maskWebhook("https://discord.com/api/webhooks/1/x"))
}
