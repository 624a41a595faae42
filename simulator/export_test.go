package simulator

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"OSSim-go/schedulers/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

const fairnessCSV = "PID,Arrival,Burst,Priority,Start,Completion,TAT,WT,Slices\n" +
	"1,0,4,1,0,6,6,2,0-2|4-6\n" +
	"2,0,4,1,2,8,8,4,2-4|6-8\n"

func TestWriteCSV(t *testing.T) {
	record := runRecord(t, types.RoundRobin, 2, fairnessProcesses()...)
	buf := &bytes.Buffer{}
	require.NoError(t, WriteCSV(buf, record))
	assert.Equal(t, fairnessCSV, buf.String())
}

func TestWriteCSV_NothingToExport(t *testing.T) {
	assert.ErrorIs(t, WriteCSV(&bytes.Buffer{}, nil), ErrNothingToExport)
	assert.ErrorIs(t, WriteCSV(&bytes.Buffer{}, &types.Record{}), ErrNothingToExport)
	assert.ErrorIs(t, ExportCSV(context.Background(), nil, filepath.Join(t.TempDir(), "x.csv")), ErrNothingToExport)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "result.csv")
	record := runRecord(t, types.RoundRobin, 2, fairnessProcesses()...)
	require.NoError(t, ExportCSV(ctx, record, path))
	data, err := afs.New().DownloadWithURL(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, fairnessCSV, string(data))
}
