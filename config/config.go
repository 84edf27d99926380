// Package config TOML 설정 파일
package config

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"sortbench/bench"
	"sortbench/dataset"
	"sortbench/logutil"
	"sortbench/report"
	"sortbench/sort"
)

// ErrInvalid 설정 값 검증 실패
var ErrInvalid = errors.New("invalid config")

// Config 전체 설정
type Config struct {
	Log      logutil.Config `toml:"log"`
	Run      RunConfig      `toml:"run"`
	Breaking BreakingConfig `toml:"breaking"`
	Generate GenerateConfig `toml:"generate"`
	Report   report.Columns `toml:"report"`
}

// RunConfig 인덱스 기반 평균 측정
type RunConfig struct {
	// IndexPath Path, Size, Category 컬럼을 가진 .csv/.xlsx 인덱스
	IndexPath string `toml:"index"`
	OutputDir string `toml:"output_dir"`
	Trials    int    `toml:"trials"`
	Clusters  int    `toml:"clusters"`
	// GapSequence 적응형 셸 정렬 간격 수열: linear | exponential
	GapSequence string   `toml:"gap_sequence"`
	Algorithms  []string `toml:"algorithms"`
	// Formats 평균 표 형식: csv, xlsx
	Formats []string `toml:"formats"`
	Plot    bool     `toml:"plot"`
}

// BreakingConfig 한계점 탐색
type BreakingConfig struct {
	InputPath string `toml:"input"`
	Output    string `toml:"output"`
	Step      int    `toml:"step"`
	// MaxSize 0 이면 제한 없음
	MaxSize     int      `toml:"max_size"`
	TimeLimit   Duration `toml:"time_limit"`
	// MemoryLimit 500e6, 500000000, "500 MB" 모두 허용
	MemoryLimit Bytes    `toml:"memory_limit"`
	Algorithms  []string `toml:"algorithms"`
}

// GenerateConfig 합성 데이터셋 생성
type GenerateConfig struct {
	Root       string   `toml:"root"`
	IndexPath  string   `toml:"index"`
	Sizes      []int    `toml:"sizes"`
	Categories []string `toml:"categories"`
	Seed       int64    `toml:"seed"`
}

// Duration "5s" 같은 문자열을 받는 time.Duration
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Bytes 바이트 수. TOML 정수, 실수(500e6), 단위 문자열("500 MB", "1GiB")을 받는다.
//
// pflag.Value 도 구현하므로 명령행 플래그로 바로 쓸 수 있다.
type Bytes uint64

func (b *Bytes) UnmarshalTOML(v interface{}) error {
	switch v := v.(type) {
	case int64:
		if v < 0 {
			return errors.Newf("negative byte count %d", v)
		}
		*b = Bytes(v)
		return nil
	case float64:
		if v < 0 || v != math.Trunc(v) || v >= math.MaxUint64 {
			return errors.Newf("byte count %v is not a non-negative integer", v)
		}
		*b = Bytes(v)
		return nil
	case string:
		return b.UnmarshalText([]byte(v))
	}
	return errors.Newf("byte count: unsupported TOML value %T", v)
}

func (b *Bytes) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return b.UnmarshalTOML(f)
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return errors.Wrapf(err, "byte count %q", s)
	}
	*b = Bytes(n)
	return nil
}

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(b), 10)), nil
}

func (b Bytes) String() string { return humanize.Bytes(uint64(b)) }

func (b *Bytes) Set(s string) error { return b.UnmarshalText([]byte(s)) }

func (b *Bytes) Type() string { return "bytes" }

// Default 기본 설정
func Default() Config {
	categories := make([]string, 0, len(dataset.Categories()))
	for _, c := range dataset.Categories() {
		categories = append(categories, string(c))
	}

	return Config{
		Log: logutil.DefaultConfig(),
		Run: RunConfig{
			IndexPath:   "dataset_summary.csv",
			OutputDir:   "result",
			Trials:      bench.DefaultTrials,
			Clusters:    sort.DefaultClusters,
			GapSequence: "linear",
			Algorithms:  []string{"cluster_shell", "cluster_comb", "merge", "quick", "heap"},
			Formats:     []string{"csv", "xlsx"},
			Plot:        true,
		},
		Breaking: BreakingConfig{
			Output:      "breaking_point_analysis.xlsx",
			Step:        100000,
			TimeLimit:   Duration{5 * time.Second},
			MemoryLimit: 500e6,
			Algorithms:  []string{"adaptive_shell", "shell"},
		},
		Generate: GenerateConfig{
			Root:       "archive",
			IndexPath:  "dataset_summary.csv",
			Sizes:      []int{1000, 5000, 10000, 50000},
			Categories: categories,
			Seed:       42,
		},
		Report: report.DefaultColumns(),
	}
}

// Load 기본 설정 위에 path 의 값을 덮어쓴다. 알 수 없는 키는 에러다.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Wrapf(ErrInvalid, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate 설정 값 검사
func (c Config) Validate() error {
	if c.Run.Trials <= 0 {
		return errors.Wrapf(ErrInvalid, "run.trials=%d", c.Run.Trials)
	}
	if c.Run.Clusters <= 0 {
		return errors.Wrapf(ErrInvalid, "run.clusters=%d", c.Run.Clusters)
	}
	if _, err := c.Run.Gaps(); err != nil {
		return err
	}
	for _, f := range c.Run.Formats {
		if f != "csv" && f != "xlsx" {
			return errors.Wrapf(ErrInvalid, "run.formats: %q", f)
		}
	}
	if c.Breaking.Step <= 0 {
		return errors.Wrapf(ErrInvalid, "breaking.step=%d", c.Breaking.Step)
	}
	if c.Breaking.MaxSize < 0 {
		return errors.Wrapf(ErrInvalid, "breaking.max_size=%d", c.Breaking.MaxSize)
	}
	if c.Breaking.TimeLimit.Duration <= 0 {
		return errors.Wrapf(ErrInvalid, "breaking.time_limit=%s", c.Breaking.TimeLimit)
	}
	if c.Breaking.MemoryLimit == 0 {
		return errors.Wrap(ErrInvalid, "breaking.memory_limit=0")
	}
	for _, names := range [][]string{c.Run.Algorithms, c.Breaking.Algorithms} {
		if _, err := bench.Resolve(names, bench.Options{}); err != nil {
			return errors.Mark(err, ErrInvalid)
		}
	}
	for _, n := range c.Generate.Sizes {
		if n <= 0 {
			return errors.Wrapf(ErrInvalid, "generate.sizes: %d", n)
		}
	}
	for _, name := range c.Generate.Categories {
		if _, err := dataset.ParseCategory(name); err != nil {
			return errors.Mark(err, ErrInvalid)
		}
	}
	return nil
}

// Gaps GapSequence 이름을 함수로
func (r RunConfig) Gaps() (sort.GapSequence, error) {
	switch strings.ToLower(r.GapSequence) {
	case "", "linear":
		return sort.LinearGaps, nil
	case "exponential":
		return sort.ExponentialGaps, nil
	}
	return nil, errors.Wrapf(ErrInvalid, "run.gap_sequence=%q", r.GapSequence)
}

// Options 알고리즘 생성 옵션
func (r RunConfig) Options() bench.Options {
	gaps, _ := r.Gaps()
	return bench.Options{Clusters: r.Clusters, Gaps: gaps}
}

// Limits 한계점 탐색 파라미터
func (b BreakingConfig) Limits() bench.Limits {
	return bench.Limits{
		Step:        b.Step,
		MaxSize:     b.MaxSize,
		TimeLimit:   b.TimeLimit.Duration,
		MemoryLimit: uint64(b.MemoryLimit),
	}
}
