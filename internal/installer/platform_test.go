package installer

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		goos    string
		want    Platform
		wantErr bool
	}{
		{goos: "darwin", want: MacOS},
		{goos: "linux", want: Linux},
		{goos: "windows", wantErr: true},
		{goos: "freebsd", wantErr: true},
		{goos: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := Detect(tt.goos)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatform_DisplayName(t *testing.T) {
	assert.Equal(t, "macOS", MacOS.DisplayName())
	assert.Equal(t, "Linux", Linux.DisplayName())
}

func TestNew(t *testing.T) {
	env := Env{Home: "/home/dev", Root: "/repo"}
	fs := afero.NewMemMapFs()

	s, err := New(Linux, env, fs, newFakeRunner())
	require.NoError(t, err)
	assert.Equal(t, "cron", s.Name())
	assert.Equal(t, "cron jobs", s.Artifacts())

	s, err = New(MacOS, env, fs, newFakeRunner())
	require.NoError(t, err)
	assert.Equal(t, "launchd", s.Name())
	assert.Equal(t, "launchd plists", s.Artifacts())

	_, err = New(Platform("plan9"), env, fs, newFakeRunner())
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestJobs(t *testing.T) {
	jobs := Jobs()

	require.Len(t, jobs, 2)
	assert.Equal(t, "com.compound.review", jobs[0].Label)
	assert.Equal(t, "0 23 * * *", jobs[0].Cron)
	assert.Equal(t, "11:00 PM", jobs[0].Time)
	assert.Equal(t, "claude-compound-review.log", jobs[0].Log)
	assert.Equal(t, "com.compound.auto", jobs[1].Label)
	assert.Equal(t, "30 23 * * *", jobs[1].Cron)
	assert.Equal(t, "11:30 PM", jobs[1].Time)
	assert.Equal(t, "claude-auto-compound.log", jobs[1].Log)
	assert.Equal(t, "com.compound.auto.plist", jobs[1].Plist())
}

func TestParseJobs_Invalid(t *testing.T) {
	_, err := parseJobs([]byte("jobs: ["))
	assert.Error(t, err)

	_, err = parseJobs([]byte("jobs: []"))
	assert.Error(t, err)
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("0 23 * * * /repo/scripts/claude-compound-review.sh", "claude-compound-review.sh"))
	assert.True(t, containsWord("-\t0\tcom.compound.auto\n", "com.compound.auto"))
	assert.False(t, containsWord("-\t0\tcom.compound.auto.old\n", "com.compound.auto"))
	assert.False(t, containsWord("", "com.compound.auto"))
}

func TestContainsWord_SkipsCommentedLines(t *testing.T) {
	assert.False(t, containsWord("# 0 23 * * * /repo/scripts/claude-compound-review.sh\n", "claude-compound-review.sh"))
	assert.False(t, containsWord("  \t# 0 23 * * * /repo/scripts/claude-compound-review.sh", "claude-compound-review.sh"))
	assert.True(t, containsWord("# old\n0 23 * * * /repo/scripts/claude-compound-review.sh\n", "claude-compound-review.sh"))
}
