package grid

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// narutoAndGaara is the two-record roster used by the scenario tests.
func narutoAndGaara() []Record {
	return []Record{
		{ID: "1", Name: "Naruto Uzumaki", Location: LocationKonoha, Health: HealthHealthy, Power: 9000},
		{ID: "2", Name: "Gaara", Location: LocationSuna, Health: HealthCritical, Power: 7000},
	}
}

// sampleRoster has ties on power and location to exercise stability.
func sampleRoster() []Record {
	return []Record{
		{ID: "a", Name: "Sakura Haruno", Location: LocationKonoha, Health: HealthHealthy, Power: 5000},
		{ID: "b", Name: "Kankuro", Location: LocationSuna, Health: HealthInjured, Power: 4000},
		{ID: "c", Name: "Haku", Location: LocationKiri, Health: HealthCritical, Power: 5000},
		{ID: "d", Name: "deidara", Location: LocationIwa, Health: HealthInjured, Power: 8000},
		{ID: "e", Name: "Kakashi Hatake", Location: LocationKonoha, Health: HealthHealthy, Power: 5000},
		{ID: "f", Name: "Killer Bee", Location: LocationKumo, Health: HealthCritical, Power: 9500},
	}
}

var testNames = []string{"Naruto", "naruto 12", "Gaara", "Ino", "ino", "Tenten", "Zabuza", "Ébisu", "Kiba"}

func recordGen(id int) *rapid.Generator[Record] {
	return rapid.Custom(func(t *rapid.T) Record {
		return Record{
			ID:       fmt.Sprintf("r%d", id),
			Name:     rapid.SampledFrom(testNames).Draw(t, "name"),
			Location: rapid.SampledFrom(Locations).Draw(t, "location"),
			Health:   rapid.SampledFrom(HealthStatuses).Draw(t, "health"),
			Power:    rapid.IntRange(100, 300).Draw(t, "power"),
			Viewed:   rapid.Bool().Draw(t, "viewed"),
		}
	})
}

// drawRoster draws a roster with unique ids.
func drawRoster(t *rapid.T, maxLen int) []Record {
	n := rapid.IntRange(0, maxLen).Draw(t, "n")
	records := make([]Record, n)
	for i := range records {
		records[i] = recordGen(i).Draw(t, fmt.Sprintf("record%d", i))
	}
	return records
}

func drawCriteria(t *rapid.T) Criteria {
	return Criteria{
		Search: rapid.SampledFrom([]string{"", "na", "NA", "ko", "i", "zz", "ebi", "Kumo"}).Draw(t, "search"),
		Health: rapid.SliceOfDistinct(rapid.SampledFrom(HealthStatuses), func(h Health) Health { return h }).Draw(t, "health"),
	}
}

// captureLogger returns a logger writing JSON lines into the returned
// buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

type logLine struct {
	Msg string   `json:"msg"`
	IDs []string `json:"ids"`
}

// logLines decodes every record with the given message.
func logLines(t *testing.T, buf *bytes.Buffer, msg string) []logLine {
	t.Helper()
	var out []logLine
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line logLine
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		if line.Msg == msg {
			out = append(out, line)
		}
	}
	return out
}

func readyController(t *testing.T, records []Record, opts ...Option) *Controller {
	t.Helper()
	c := NewController(opts...)
	require.True(t, c.Resolve(records))
	return c
}
