package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"gopkg.in/yaml.v3"
)

// AgentConfig describes one player in an experiment. Kind is "search" or
// "random"; the search fields are ignored for the random baseline.
type AgentConfig struct {
	ID          int    `yaml:"id"`
	Kind        string `yaml:"kind"`
	Depth       int    `yaml:"depth,omitempty"`
	Propagation string `yaml:"propagation,omitempty"`
	TieBreak    string `yaml:"tiebreak,omitempty"`
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// moveRow is the on-disk layout of a MoveRecord
type moveRow struct {
	Game        int64  `parquet:"game"`
	Step        int64  `parquet:"step"`
	Move        string `parquet:"move,dict"`
	Score       int64  `parquet:"score"`
	Depth       int64  `parquet:"depth"`
	Propagation string `parquet:"propagation,dict"`
	DurationNs  int64  `parquet:"duration_ns"`
	Expanded    int64  `parquet:"expanded"`
	Generated   int64  `parquet:"generated"`
}

type Writer struct {
	baseDir string
}

func NewWriter(outDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	data, err := yaml.Marshal(struct {
		Agents []AgentConfig `yaml:"agents"`
	}{Agents: configs})
	if err != nil {
		return fmt.Errorf("failed to encode agent configs: %w", err)
	}

	path := filepath.Join(w.baseDir, "agent_configs.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write agent configs file: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"id", "agent", "start_time", "end_time", "duration", "moves", "score", "max_tile"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.FormatUint(uint64(record.Score), 10),
			strconv.FormatUint(uint64(record.MaxTile), 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]moveRow, len(records))
	for i, record := range records {
		rows[i] = moveRow{
			Game:        int64(record.Game),
			Step:        int64(record.Step),
			Move:        record.Move,
			Score:       int64(record.Score),
			Depth:       int64(record.Depth),
			Propagation: record.Propagation,
			DurationNs:  record.Duration.Nanoseconds(),
			Expanded:    int64(record.Expanded),
			Generated:   int64(record.Generated),
		}
	}

	path := filepath.Join(w.baseDir, "move_records.parquet")
	err := parquet.WriteFile(path, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}
