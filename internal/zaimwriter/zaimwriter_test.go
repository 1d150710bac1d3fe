package zaimwriter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suica-csv/internal/models"
)

var header = []string{
	"取引日時", "出金金額(円)", "入金金額(円)", "海外出金金額", "海外入金金額",
	"通貨", "残高(円)", "取引内容", "取引先", "お支払方法", "メモ", "利用者", "取引番号",
}

func sampleRows(n int) []models.ZaimRow {
	rows := make([]models.ZaimRow, n)
	for i := range rows {
		rows[i] = models.ZaimRow{
			Date:          "2024/01/24 10:00:00",
			Withdrawal:    "389",
			Deposit:       models.Placeholder,
			ForeignOut:    models.Placeholder,
			ForeignIn:     models.Placeholder,
			Currency:      models.Placeholder,
			Balance:       models.Placeholder,
			Content:       models.ContentPayment,
			Payee:         "現金 ATM",
			Method:        models.MethodSuica,
			Memo:          models.Placeholder,
			User:          models.UserSelf,
			TransactionNo: fmt.Sprintf("202401240001%08d", i),
		}
	}
	return rows
}

func readRaw(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func readRecords(t *testing.T, path string) [][]string {
	t.Helper()
	data := readRaw(t, path)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "file must start with a UTF-8 BOM")
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteAll_SingleFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "save.csv")
	paths, err := New(base).WriteAll(sampleRows(3))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(filepath.Dir(base), "save_001.csv")}, paths)

	records := readRecords(t, paths[0])
	require.Len(t, records, 4)
	assert.Equal(t, header, records[0])
	assert.Equal(t, "389", records[1][1])
	assert.Equal(t, "現金 ATM", records[1][8])
}

func TestWriteAll_CRLFLineEndings(t *testing.T) {
	base := filepath.Join(t.TempDir(), "save.csv")
	paths, err := New(base).WriteAll(sampleRows(2))
	require.NoError(t, err)

	data := string(readRaw(t, paths[0]))
	assert.Equal(t, 3, strings.Count(data, "\r\n"))
	assert.True(t, strings.HasSuffix(data, "\r\n"))
}

func TestWriteAll_MinimalQuoting(t *testing.T) {
	rows := sampleRows(1)
	rows[0].Withdrawal = "1,000"
	rows[0].Payee = `He said "hi"`

	base := filepath.Join(t.TempDir(), "save.csv")
	paths, err := New(base).WriteAll(rows)
	require.NoError(t, err)

	data := string(readRaw(t, paths[0]))
	// Comma-bearing and quote-bearing fields are quoted, plain ones not.
	assert.Contains(t, data, `"1,000"`)
	assert.Contains(t, data, `"He said ""hi"""`)
	assert.Contains(t, data, "\r\n2024/01/24 10:00:00,")

	// Round-trips through a standard CSV reader.
	records := readRecords(t, paths[0])
	assert.Equal(t, "1,000", records[1][1])
	assert.Equal(t, `He said "hi"`, records[1][8])
}

func TestWriteAll_SplitsAtCeiling(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		wantFiles int
		lastRows  int
	}{
		{"Empty still writes header file", 0, 1, 0},
		{"Just below ceiling", 99, 1, 99},
		{"One past ceiling", 100, 2, 1},
		{"Two full files", 198, 2, 99},
		{"Two full files plus one", 199, 3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := filepath.Join(t.TempDir(), "save.csv")
			paths, err := New(base).WriteAll(sampleRows(tc.rows))
			require.NoError(t, err)
			require.Len(t, paths, tc.wantFiles)

			for i, path := range paths {
				records := readRecords(t, path)
				assert.Equal(t, header, records[0])
				if i < len(paths)-1 {
					assert.Len(t, records, 100, "every file but the last holds 99 data rows")
				} else {
					assert.Len(t, records, tc.lastRows+1)
				}
			}
		})
	}
}

func TestWriteAll_CustomCeiling(t *testing.T) {
	base := filepath.Join(t.TempDir(), "save.csv")
	w := NewWithMaxLines(base, 5)
	paths, err := w.WriteAll(sampleRows(9))
	require.NoError(t, err)
	// 4 data rows per file.
	require.Len(t, paths, 3)
	assert.Len(t, readRecords(t, paths[2]), 2)
}

func TestWriteAll_Announce(t *testing.T) {
	base := filepath.Join(t.TempDir(), "save.csv")
	w := NewWithMaxLines(base, 3)

	var announced []string
	w.Announce = func(path string) { announced = append(announced, path) }

	paths, err := w.WriteAll(sampleRows(5))
	require.NoError(t, err)
	assert.Equal(t, paths, announced)
}

func TestNumberedPath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		n        int
		expected string
	}{
		{"With extension", "save.csv", 1, "save_001.csv"},
		{"Second file", "save.csv", 2, "save_002.csv"},
		{"No extension", "save", 1, "save_001"},
		{"Directory prefix", "out/save.csv", 12, "out/save_012.csv"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := New(tc.base)
			assert.Equal(t, tc.expected, w.numberedPath(tc.n))
		})
	}
}

func TestWriteAll_UncreatablePath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "no-such-dir", "save.csv")
	_, err := New(base).WriteAll(sampleRows(1))
	assert.Error(t, err)
}
