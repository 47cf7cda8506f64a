package cache_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lc2k/internal/cache"
)

type goldenCase struct {
	Name         string   `yaml:"name"`
	BlockSize    int      `yaml:"blockSize"`
	NumSets      int      `yaml:"numSets"`
	BlocksPerSet int      `yaml:"blocksPerSet"`
	MemWords     int      `yaml:"memWords"`
	Accesses     []int    `yaml:"accesses"`
	Trace        []string `yaml:"trace"`
}

func TestCacheGoldenFixtures(t *testing.T) {
	raw, err := os.ReadFile("../../testdata/cache_cases.yaml")
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			mem := make([]int32, tc.MemWords)
			var buf bytes.Buffer
			c, err := cache.New(tc.BlockSize, tc.NumSets, tc.BlocksPerSet, mem, cache.NewTracer(&buf))
			require.NoError(t, err)

			for _, addr := range tc.Accesses {
				c.Load(addr)
			}

			got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			require.Equal(t, tc.Trace, got)
		})
	}
}
