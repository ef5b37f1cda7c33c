package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfat-model/sfat/internal/cli/config"
	"github.com/sfat-model/sfat/internal/cli/output"
	clitestutil "github.com/sfat-model/sfat/internal/cli/testutil"
	"github.com/sfat-model/sfat/internal/testutil"
	"github.com/sfat-model/sfat/pkg/sfat"
)

// run executes cmd with a context carrying cfg.
func run(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) clitestutil.Result {
	t.Helper()
	return clitestutil.Execute(t, testutil.Context(t, cfg), cmd, args...)
}

func withOutput(format string) *config.Config {
	cfg := config.Default()
	cfg.OutputFormat = format
	return cfg
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd     *cobra.Command
		use     string
		flags   []string
		aliases []string
	}{
		{cmd: NewSpaceCommand(), use: "space", flags: []string{"start", "stop", "points"}},
		{cmd: NewTimeCommand(), use: "time", flags: []string{"start", "stop", "points"}},
		{cmd: NewBetaCommand(), use: "beta", flags: []string{"start", "stop", "points"}},
		{cmd: NewCosmologyCommand(), use: "cosmology", flags: []string{"z"}, aliases: []string{"predict"}},
		{cmd: NewPillarsCommand(), use: "pillars"},
		{cmd: NewConstantsCommand(), use: "constants"},
		{cmd: NewRunCommand(), use: "run", aliases: []string{"report"}},
		{cmd: NewVersionCommand("test"), use: "version"},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
			assert.Equal(t, tt.aliases, tt.cmd.Aliases)
		})
	}
}

func TestFlagConfigKeys(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want map[string]string
	}{
		{cmd: NewSpaceCommand(), want: map[string]string{"start": "space.start", "stop": "space.stop", "points": "space.points"}},
		{cmd: NewTimeCommand(), want: map[string]string{"start": "time.start", "stop": "time.stop", "points": "time.points"}},
		{cmd: NewBetaCommand(), want: map[string]string{"start": "beta.start", "stop": "beta.stop", "points": "beta.points"}},
		{cmd: NewCosmologyCommand(), want: map[string]string{"z": "redshifts"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			for flag, key := range tt.want {
				f := tt.cmd.Flags().Lookup(flag)
				require.NotNil(t, f, "flag %q should exist", flag)
				assert.Equal(t, []string{key}, f.Annotations[ConfigKeyAnnotation])
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	for _, version := range []string{"0.1.0", "1.2.3", "dev"} {
		t.Run(version, func(t *testing.T) {
			res := clitestutil.Execute(t, nil, NewVersionCommand(version))
			require.NoError(t, res.Err)
			assert.Contains(t, res.Out, "SFAT v"+version)
			assert.Contains(t, res.Out, "fractal field")
		})
	}
}

func TestSpaceCommand_Markdown(t *testing.T) {
	res := run(t, NewSpaceCommand(), withOutput("markdown"))
	require.NoError(t, res.Err)

	assert.Contains(t, res.Out, "## "+sfat.SpatialTableName)
	for _, col := range []string{"x", "σ(x)", "V_log", "ρ_bio", "life_term", "L_total"} {
		assert.Contains(t, res.Out, col)
	}
	assert.Contains(t, res.Out, "0.500000")
	assert.Contains(t, res.Out, "3.500000")
}

func TestSpaceCommand_JSON(t *testing.T) {
	res := run(t, NewSpaceCommand(), withOutput("json"))
	require.NoError(t, res.Err)

	var got output.TableOutput
	require.NoError(t, json.Unmarshal([]byte(res.Out), &got))
	assert.Equal(t, sfat.SpatialTableName, got.Name)
	assert.Len(t, got.Columns, 6)
	assert.Len(t, got.Rows, 200)
}

func TestSpaceCommand_RangeFlags(t *testing.T) {
	res := run(t, NewSpaceCommand(), withOutput("json"), "--start", "1", "--stop", "2", "--points", "5")
	require.NoError(t, res.Err)

	var got output.TableOutput
	require.NoError(t, json.Unmarshal([]byte(res.Out), &got))
	require.Len(t, got.Rows, 5)
	assert.Equal(t, 1.0, got.Rows[0][0])
	assert.Equal(t, 0.0, got.Rows[0][1], "σ(x0) must be zero")
	assert.Equal(t, 2.0, got.Rows[4][0])
}

func TestSpaceCommand_DomainError(t *testing.T) {
	res := run(t, NewSpaceCommand(), withOutput("json"), "--start", "0")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, sfat.ErrDomain)
	assert.Empty(t, res.Out)

	res = run(t, NewSpaceCommand(), withOutput("json"), "--points", "1")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, sfat.ErrInvalidDomain)
}

func TestTimeCommand_CSV(t *testing.T) {
	res := run(t, NewTimeCommand(), withOutput("csv"), "--points", "3")
	require.NoError(t, res.Err)

	lines := strings.Split(strings.TrimSpace(res.Out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "t,σ(t)", lines[0])
	assert.Equal(t, "1.000000,0.000000", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "10.000000,"))
}

func TestTimeCommand_DomainError(t *testing.T) {
	res := run(t, NewTimeCommand(), withOutput("csv"), "--start", "-1")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, sfat.ErrDomain)
}

func TestBetaCommand(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		res := run(t, NewBetaCommand(), withOutput("markdown"))
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, betaTableName)
		assert.Contains(t, res.Out, "undefined")
		assert.NotContains(t, res.Out, "NaN")
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, NewBetaCommand(), withOutput("json"))
		require.NoError(t, res.Err)

		var got output.BetaOutput
		require.NoError(t, json.Unmarshal([]byte(res.Out), &got))
		require.Len(t, got.Rows, 26)
		assert.Nil(t, got.Rows[0].Beta)
		assert.False(t, got.Rows[0].Defined)
		require.NotNil(t, got.Rows[25].Beta)
		assert.Equal(t, 2.0, got.Rows[25].G)
	})
}

func TestCosmologyCommand(t *testing.T) {
	t.Run("default redshift", func(t *testing.T) {
		res := run(t, NewCosmologyCommand(), withOutput("markdown"))
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, "Prediction for z = 0.7\n")
		assert.Contains(t, res.Out, "SFAT: 0.709153, ΛCDM: 0.698000, Δ%: 1.60%")
	})

	t.Run("several redshifts as json", func(t *testing.T) {
		res := run(t, NewCosmologyCommand(), withOutput("json"), "--z", "0", "--z", "0.7")
		require.NoError(t, res.Err)

		var got []output.PredictionOutput
		require.NoError(t, json.Unmarshal([]byte(res.Out), &got))
		require.Len(t, got, 2)
		assert.InDelta(t, 2.0, got[0].DeviationPercent, 1e-12)
		assert.Equal(t, 0.698, got[1].LambdaCDM)
	})

	t.Run("csv", func(t *testing.T) {
		res := run(t, NewCosmologyCommand(), withOutput("csv"))
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, "z,sfat,lambda_cdm,deviation_percent")
		assert.Contains(t, res.Out, "0.7,0.709153,0.698000,1.60")
	})

	t.Run("invalid redshift", func(t *testing.T) {
		res := run(t, NewCosmologyCommand(), withOutput("markdown"), "--z", "-1")
		require.Error(t, res.Err)
		assert.ErrorIs(t, res.Err, sfat.ErrDomain)
	})
}

func TestPillarsCommand(t *testing.T) {
	res := run(t, NewPillarsCommand(), withOutput("text"))
	require.NoError(t, res.Err)

	assert.True(t, strings.HasPrefix(res.Out, sfat.PillarsTitle+"\n"))
	for _, p := range sfat.Pillars() {
		assert.Contains(t, res.Out, p+"\n")
	}

	res = run(t, NewPillarsCommand(), withOutput("yaml"))
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "title:")
	assert.Contains(t, res.Out, "13 Foundational Pillars")
	assert.Contains(t, res.Out, "pillars:")
}

func TestConstantsCommand(t *testing.T) {
	res := run(t, NewConstantsCommand(), withOutput("json"))
	require.NoError(t, res.Err)

	var got []output.ConstantInfo
	require.NoError(t, json.Unmarshal([]byte(res.Out), &got))

	byName := map[string]float64{}
	for _, c := range got {
		byName[c.Name] = c.Value
	}
	assert.Equal(t, sfat.Phi, byName["phi"])
	assert.Equal(t, 0.1, byName["kappa"])
	assert.Equal(t, 1.22e19, byName["planck_mass"])
	assert.Equal(t, 1.0, byName["rho_max"])
}

func TestRunCommand(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		res := run(t, NewRunCommand(), withOutput("markdown"))
		require.NoError(t, res.Err)

		pillars := strings.Index(res.Out, sfat.PillarsTitle)
		space := strings.Index(res.Out, sfat.SpatialTableName)
		tm := strings.Index(res.Out, sfat.TemporalTableName)
		cosmo := strings.Index(res.Out, "Prediction for z = 0.7")
		require.True(t, pillars >= 0 && space >= 0 && tm >= 0 && cosmo >= 0, res.Out)
		assert.Less(t, pillars, space)
		assert.Less(t, space, tm)
		assert.Less(t, tm, cosmo)
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, NewRunCommand(), withOutput("json"))
		require.NoError(t, res.Err)

		var got output.ReportOutput
		require.NoError(t, json.Unmarshal([]byte(res.Out), &got))
		assert.Len(t, got.Pillars.Pillars, 13)
		assert.Len(t, got.Space.Rows, 200)
		assert.Len(t, got.Time.Rows, 200)
		assert.Len(t, got.Predictions, 1)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := run(t, NewRunCommand(), withOutput("json"))
		second := run(t, NewRunCommand(), withOutput("json"))
		require.NoError(t, first.Err)
		assert.Equal(t, first.Out, second.Out)
	})

	t.Run("no partial output on error", func(t *testing.T) {
		cfg := withOutput("markdown")
		cfg.Redshifts = []float64{-2}

		res := run(t, NewRunCommand(), cfg)
		require.Error(t, res.Err)
		assert.Empty(t, res.Out)
	})
}

func TestCommandsWithoutContextUseDefaults(t *testing.T) {
	res := clitestutil.Execute(t, nil, NewCosmologyCommand())
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "Prediction for z = 0.7")
}
