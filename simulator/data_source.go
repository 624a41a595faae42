package simulator

import (
	"OSSim-go/deadlock"
	"OSSim-go/errs"
	"OSSim-go/schedulers/types"
	"OSSim-go/util"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	colPID      = "pid"
	colArrival  = "arrival"
	colBurst    = "burst"
	colPriority = "priority"
)

// ProcessSpec 是输入文件中的一条进程记录。Priority 缺省时使用 types.DefaultPriority。
type ProcessSpec struct {
	PID      int     `yaml:"pid" json:"pid"`
	Arrival  float64 `yaml:"arrival" json:"arrival"`
	Burst    float64 `yaml:"burst" json:"burst"`
	Priority *int    `yaml:"priority,omitempty" json:"priority,omitempty"`
}

func (s *ProcessSpec) Process() *types.Process {
	priority := types.DefaultPriority
	if s.Priority != nil {
		priority = *s.Priority
	}
	return types.NewProcess(types.PID(s.PID), types.Time(s.Arrival), types.Duration(s.Burst), priority)
}

// Scenario 一次完整的实验输入：若干算法、一组进程，以及可选的银行家算法矩阵。
type Scenario struct {
	Name       string            `yaml:"name" json:"name"`
	Algorithms []types.Algorithm `yaml:"algorithms" json:"algorithms"`
	Quantum    float64           `yaml:"quantum" json:"quantum"`
	Processes  []*ProcessSpec    `yaml:"processes" json:"processes"`
	Banker     *deadlock.State   `yaml:"banker,omitempty" json:"banker,omitempty"`
	// Answers 可选的手工计算结果，与第一个算法的模拟结果比较。
	Answers []*Answer `yaml:"answers,omitempty" json:"answers,omitempty"`
}

func (s *Scenario) ProcessList() []*types.Process {
	res := make([]*types.Process, 0, len(s.Processes))
	for _, spec := range s.Processes {
		res = append(res, spec.Process())
	}
	return res
}

type DataSource struct {
	fs afs.Service
}

func NewDataSource() *DataSource {
	return &DataSource{fs: afs.New()}
}

// LoadScenario 读取 YAML 场景，URL 可以是本地路径或 afs 支持的存储。
func (ds *DataSource) LoadScenario(ctx context.Context, URL string) (*Scenario, error) {
	data, err := ds.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", URL, err)
	}
	return ParseScenario(data)
}

func (ds *DataSource) LoadProcessesCSV(ctx context.Context, URL string) ([]*types.Process, error) {
	data, err := ds.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("load processes %s: %w", URL, err)
	}
	return ParseProcessesCSV(bytes.NewReader(data))
}

func ParseScenario(data []byte) (*Scenario, error) {
	scenario := &Scenario{}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	for idx, spec := range scenario.Processes {
		if spec == nil {
			return nil, errs.Invalid(idx, "process", nil, "empty record")
		}
	}
	for idx, answer := range scenario.Answers {
		if answer == nil {
			return nil, errs.Invalid(idx, "answer", nil, "empty record")
		}
	}
	return scenario, nil
}

// ParseProcessesCSV 读取 pid, arrival, burst[, priority] 四列。
// 有表头时按列名（不区分大小写）定位，其余列忽略；首行为数字时按上述列序解析。
func ParseProcessesCSV(r io.Reader) ([]*types.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errs.Invalid(-1, "csv", nil, err.Error())
	}
	if len(records) == 0 {
		return nil, errs.Invalid(-1, "csv", 0, "no records")
	}

	colIdx := map[string]int{colPID: 0, colArrival: 1, colBurst: 2, colPriority: 3}
	rows := records
	if _, err := strconv.Atoi(strings.TrimSpace(records[0][0])); err != nil {
		headers := make([]string, 0, len(records[0]))
		for _, h := range records[0] {
			headers = append(headers, strings.ToLower(strings.TrimSpace(h)))
		}
		for _, col := range []string{colPID, colArrival, colBurst, colPriority} {
			colIdx[col] = util.StringSliceIndexOf(headers, col)
		}
		for _, col := range []string{colPID, colArrival, colBurst} {
			if colIdx[col] == -1 {
				return nil, errs.Invalid(-1, "header", records[0], "missing column "+col)
			}
		}
		rows = records[1:]
	}

	processes := make([]*types.Process, 0, len(rows))
	for idx, row := range rows {
		cell := func(col string) string {
			i := colIdx[col]
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		pid, err := strconv.Atoi(cell(colPID))
		if err != nil {
			return nil, errs.Invalid(idx, colPID, cell(colPID), "not an integer")
		}
		arrival, err := strconv.ParseFloat(cell(colArrival), 64)
		if err != nil {
			return nil, errs.Invalid(idx, colArrival, cell(colArrival), "not a number")
		}
		burst, err := strconv.ParseFloat(cell(colBurst), 64)
		if err != nil {
			return nil, errs.Invalid(idx, colBurst, cell(colBurst), "not a number")
		}
		priority := types.DefaultPriority
		if v := cell(colPriority); v != "" {
			if priority, err = strconv.Atoi(v); err != nil {
				return nil, errs.Invalid(idx, colPriority, v, "not an integer")
			}
		}
		processes = append(processes, types.NewProcess(types.PID(pid), types.Time(arrival), types.Duration(burst), priority))
	}
	return processes, nil
}
