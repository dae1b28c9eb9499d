// Package roster provides record sources for the grid: a seeded mock
// generator and a loader for roster files.
package roster

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/andareed/siftly-roster/grid"
)

// DefaultCount is how many records the generator produces when asked for
// a non-positive count.
const DefaultCount = 1200

const (
	minPower = 100
	maxPower = 10000
)

var baseNames = []string{
	"Naruto Uzumaki", "Sasuke Uchiha", "Sakura Haruno", "Kakashi Hatake", "Tsunade Senju",
	"Jiraiya", "Orochimaru", "Itachi Uchiha", "Gaara", "Rock Lee", "Neji Hyuga", "Tenten",
	"Shikamaru Nara", "Ino Yamanaka", "Choji Akimichi", "Kiba Inuzuka", "Shino Aburame",
	"Hinata Hyuga", "Kurenai Yuhi", "Asuma Sarutobi", "Might Guy", "Temari", "Kankuro",
	"Chiyo", "Deidara", "Sasori", "Hidan", "Kakuzu", "Pain", "Konan", "Tobi", "Zetsu",
	"Kisame Hoshigaki", "Haku", "Zabuza Momochi", "Kabuto Yakushi", "Anko Mitarashi",
	"Ibiki Morino", "Genma Shiranui", "Raido Namiashi", "Kotetsu Hagane", "Izumo Kamizuki",
	"Iruka Umino", "Mizuki", "Hiruzen Sarutobi", "Minato Namikaze", "Kushina Uzumaki",
	"Fugaku Uchiha", "Mikoto Uchiha", "Obito Uchiha", "Rin Nohara", "Yahiko", "Nagato",
	"Madara Uchiha", "Hashirama Senju", "Tobirama Senju", "Mito Uzumaki", "Tsunade",
}

var extraNames = []string{
	"Akira Tanaka", "Yuki Sato", "Ryu Nakamura", "Mei Watanabe", "Ken Yoshida",
	"Sora Takahashi", "Hana Suzuki", "Dai Kobayashi", "Rei Kato", "Jin Yamamoto",
	"Aya Ishida", "Taro Kimura", "Yui Hayashi", "Kyo Saito", "Nao Matsumoto",
	"Zen Inoue", "Rio Fujiwara", "Kai Ogawa", "Mio Goto", "Ryo Hasegawa",
	"Shin Murakami", "Yuki Kondo", "Hiro Ito", "Nana Nakajima", "Tomo Aoki",
	"Sara Sasaki", "Jun Yamazaki", "Miku Nomura", "Yuta Okamoto", "Kira Shimizu",
}

var allNames = append(append([]string(nil), baseNames...), extraNames...)

// Generator produces a random roster. The same Seed always yields the same
// roster. Delay simulates a slow backend.
type Generator struct {
	Seed  uint64
	Delay time.Duration
}

// Load waits for Delay (or ctx) and then generates count records.
func (g Generator) Load(ctx context.Context, count int) ([]grid.Record, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("generate roster: %w", ctx.Err())
		case <-timer.C:
		}
	}
	if count <= 0 {
		count = DefaultCount
	}
	return g.Generate(count), nil
}

// Generate builds count records without any delay.
func (g Generator) Generate(count int) []grid.Record {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], g.Seed)
	stream := rand.NewChaCha8(seed)
	rng := rand.New(stream)

	records := make([]grid.Record, 0, max(count, 0))
	for range count {
		id, err := uuid.NewRandomFromReader(stream)
		if err != nil {
			// ChaCha8 reads never fail.
			panic(err)
		}
		records = append(records, grid.Record{
			ID:       id.String(),
			Name:     randomName(rng),
			Location: grid.Locations[rng.IntN(len(grid.Locations))],
			Health:   grid.HealthStatuses[rng.IntN(len(grid.HealthStatuses))],
			Power:    minPower + rng.IntN(maxPower-minPower+1),
		})
	}
	return records
}

// randomName picks a name and, three times in ten, appends a number so
// the roster holds look-alike rows.
func randomName(rng *rand.Rand) string {
	name := allNames[rng.IntN(len(allNames))]
	if rng.Float64() < 0.3 {
		name = fmt.Sprintf("%s %d", name, rng.IntN(1000))
	}
	return name
}
