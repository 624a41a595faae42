package simulator

import (
	"OSSim-go/schedulers/types"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// ErrNothingToExport 没有可导出的结果，只作提示。
var ErrNothingToExport = errors.New("no processes to export")

var csvHeader = []string{"PID", "Arrival", "Burst", "Priority", "Start", "Completion", "TAT", "WT", "Slices"}

func WriteCSV(w io.Writer, record *types.Record) error {
	if record == nil || len(record.Processes) == 0 {
		return ErrNothingToExport
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range record.Processes {
		slices := make([]string, 0, len(p.ExecutedSlices))
		for _, s := range p.ExecutedSlices {
			slices = append(slices, s.String())
		}
		row := []string{
			strconv.Itoa(int(p.PID)),
			p.Arrival.String(),
			p.Burst.String(),
			strconv.Itoa(p.Priority),
			optionalTime(p.Start),
			optionalTime(p.Completion),
			optionalDuration(p.Turnaround),
			optionalDuration(p.Waiting),
			strings.Join(slices, "|"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportCSV 将结果写到 URL。
func ExportCSV(ctx context.Context, record *types.Record, URL string) error {
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, record); err != nil {
		return err
	}
	if err := afs.New().Upload(ctx, URL, file.DefaultFileOsMode, buf); err != nil {
		return fmt.Errorf("export csv %s: %w", URL, err)
	}
	return nil
}

func optionalTime(t *types.Time) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func optionalDuration(d *types.Duration) string {
	if d == nil {
		return ""
	}
	return d.String()
}
