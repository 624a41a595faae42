package metrics

import (
	"OSSim-go/schedulers/types"
	"OSSim-go/util"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

type Reports struct {
	CaseName string               `json:"case_name"`
	Reports  map[string][]*Report `json:"reports"`
}

type Report struct {
	RunID         string      `json:"run_id"`
	SchedulerName string      `json:"scheduler_name"`
	SchedulerInfo interface{} `json:"scheduler_info"`
	Algorithm     string      `json:"algorithm"`
	Preemptive    bool        `json:"preemptive"`
	Quantum       float64     `json:"quantum,omitempty"`
	Execution     *Execution  `json:"execution"`
}

type Process struct {
	PID             int                      `json:"pid"`
	Arrival         float64                  `json:"arrival"`
	Burst           float64                  `json:"burst"`
	Priority        int                      `json:"priority"`
	Start           float64                  `json:"start"`
	Completion      float64                  `json:"completion"`
	Turnaround      float64                  `json:"turnaround"`
	Waiting         float64                  `json:"waiting"`
	Response        float64                  `json:"response"`
	ExecutionRanges []*ProcessExecutionRange `json:"execution_ranges"`
}

type ProcessExecutionRange struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Runtime float64 `json:"runtime"`
}

type Execution struct {
	AverageTurnaround           float64     `json:"average_turnaround"`
	AverageWaiting              float64     `json:"average_waiting"`
	AverageResponse             float64     `json:"average_response"`
	MaxWaiting                  float64     `json:"max_waiting"`
	Makespan                    float64     `json:"makespan"`
	BusyTime                    float64     `json:"busy_time"`
	CPUUtilization              float64     `json:"cpu_utilization"`
	Throughput                  float64     `json:"throughput"`
	ContextSwitches             int         `json:"context_switches"`
	FinishedProcessesCount      int         `json:"finished_processes_count"`
	FinishedProcesses           []*Process  `json:"finished_processes"`
	DoScheduleCount             int         `json:"do_schedule_count"`
	AverageDoScheduleDurationUs int64       `json:"average_do_schedule_duration_us"`
	MaxDoScheduleDurationUs     int64       `json:"max_do_schedule_duration_us"`
	SchedulerRecordExtra        interface{} `json:"scheduler_record_extra"`
}

// SaveSimulationReport 将多次模拟的报告以JSON写入 folderURL，返回写入的文件URL。
// folderURL 可以是本地路径，也可以是 afs 支持的任意存储。
func SaveSimulationReport(ctx context.Context, folderURL string, caseName string, algorithm2Reports map[string][]*Report) (string, error) {
	reports := &Reports{
		CaseName: strings.Split(caseName, ".")[0],
		Reports:  make(map[string][]*Report),
	}
	for algorithm, rs := range algorithm2Reports {
		reports.Reports[algorithm] = rs
	}
	bs, err := json.MarshalIndent(reports, "", "\t")
	if err != nil {
		return "", fmt.Errorf("save report: marshal: %w", err)
	}
	fileURL := url.Join(folderURL, generateFileName(reports, time.Now()))
	fs := afs.New()
	if err := fs.Upload(ctx, fileURL, file.DefaultFileOsMode, bytes.NewReader(bs)); err != nil {
		return "", fmt.Errorf("save report: upload %s: %w", fileURL, err)
	}
	return fileURL, nil
}

func generateFileName(reports *Reports, now time.Time) string {
	datetime := now.Format("01-02_15-04-05")
	algorithms := make([]string, 0, len(reports.Reports))
	for algorithm := range reports.Reports {
		algorithms = append(algorithms, strings.ReplaceAll(algorithm, " ", ""))
	}
	util.StableSortBy(algorithms, func(a, b string) bool { return a < b })
	caseName := reports.CaseName
	if caseName == "" {
		caseName = "case"
	}
	return fmt.Sprintf("%s_%s_%s.json",
		strings.Trim(util.StringSliceJoinWith(algorithms, "_"), "[]"),
		caseName,
		datetime)
}

// GenerateSingleSimulationReport 由一次模拟的记录生成报告。
func GenerateSingleSimulationReport(record *types.Record) *Report {
	report := &Report{
		RunID:         record.RunID,
		SchedulerName: record.SchedulerName,
		SchedulerInfo: record.SchedulerInfo,
		Algorithm:     record.Algorithm.String(),
		Preemptive:    record.Algorithm.Preemptive(),
	}
	if record.Algorithm.RequiresQuantum() {
		report.Quantum = float64(record.Params.Quantum)
	}
	durations := make([]time.Duration, 0)
	var extra interface{}
	if schedulerRecord := record.SchedulerRecord; schedulerRecord != nil {
		for _, doScheduleRecord := range schedulerRecord.DoScheduleRecords {
			durations = append(durations, doScheduleRecord.Duration)
		}
		extra = schedulerRecord.Extra
	}
	makespan := float64(record.Makespan())
	busy := busyTime(record.Processes)
	execution := &Execution{
		AverageTurnaround:           avgTurnaround(record.Processes),
		AverageWaiting:              avgWaiting(record.Processes),
		AverageResponse:             avgResponse(record.Processes),
		MaxWaiting:                  maxWaiting(record.Processes),
		Makespan:                    makespan,
		BusyTime:                    busy,
		ContextSwitches:             contextSwitches(record.Timeline()),
		FinishedProcessesCount:      len(record.Processes),
		FinishedProcesses:           packProcesses(record.Processes),
		DoScheduleCount:             len(durations),
		AverageDoScheduleDurationUs: util.AvgDuration(durations...).Microseconds(),
		MaxDoScheduleDurationUs:     util.MaxDuration(durations...).Microseconds(),
		SchedulerRecordExtra:        extra,
	}
	if makespan > 0 {
		execution.CPUUtilization = busy / makespan
		execution.Throughput = float64(len(record.Processes)) / makespan
	}
	report.Execution = execution
	return report
}
