package config

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const sampleConfig = `
[server]
cors_origins = ["https://estetica.example"]
write_rate_per_minute = 12

[storage]
driver = "sqlite"
sqlite_path = "bookings.db"

[working_hours]
timezone = "UTC"
start = "09:00"
end = "18:00"
slot_minutes = 15
working_days = [1, 2, 3, 4, 5]
holidays = ["2025-12-25"]
min_lead_minutes = 0

[[services]]
id = "svc-1"
name = "Limpieza facial"
price = 120
duration_minutes = 60
requires_evaluation = true

[[services]]
id = "svc-3"
name = "Depilación láser"
duration_minutes = 45
sessions_count = 6

[[products]]
id = "prd-1"
name = "Crema hidratante"
`

func TestParse(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, psqlbuilder.SQLite, cfg.Dialect())
	assert.Equal(t, []string{"https://estetica.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 12, cfg.Server.WriteRateBurst)

	wh := cfg.WorkingHours.ToDomain()
	assert.Equal(t, "09:00", wh.Start)
	assert.Equal(t, 15, wh.SlotMinutes)
	assert.Equal(t, 0, wh.MinLeadMinutes)
	assert.Equal(t, []string{"2025-12-25"}, wh.Holidays)

	require.Len(t, cfg.Services, 2)
	svc := cfg.Services[1].ToDomain()
	assert.Equal(t, 6, svc.Sessions())
	assert.True(t, cfg.Services[0].ToDomain().RequiresEvaluation)
	assert.Equal(t, "Crema hidratante", cfg.Products[0].ToDomain().Name)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(`
[[services]]
id = "svc-1"
duration_minutes = 30
`)
	require.NoError(t, err)

	wh := cfg.WorkingHours.ToDomain()
	assert.Equal(t, domain.DefaultTimezone, wh.Timezone)
	assert.Equal(t, domain.DefaultWorkStart, wh.Start)
	assert.Equal(t, domain.DefaultWorkEnd, wh.End)
	assert.Equal(t, domain.DefaultSlotMinutes, wh.SlotMinutes)
	assert.Equal(t, domain.DefaultWorkingDays, wh.WorkingDays)
	assert.Equal(t, domain.DefaultMinLeadMinutes, wh.MinLeadMinutes)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Contains(t, cfg.Database.DSN(), "port=5432")
	assert.Zero(t, cfg.Server.WriteRatePerMinute)
	assert.Zero(t, cfg.Server.WriteRateBurst)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown driver", data: "[storage]\ndriver = \"mongo\"\n"},
		{name: "sqlite without path", data: "[storage]\ndriver = \"sqlite\"\n"},
		{name: "bad hours", data: "[working_hours]\nstart = \"18:00\"\nend = \"09:00\"\n"},
		{name: "service without duration", data: "[[services]]\nid = \"svc-1\"\n"},
		{name: "duplicate service", data: "[[services]]\nid = \"a\"\nduration_minutes = 30\n[[services]]\nid = \"a\"\nduration_minutes = 30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database]\nhost = \"localhost\"\npassword = \"file\"\n"), 0o600))

	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
