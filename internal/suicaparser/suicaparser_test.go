package suicaparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = "月日\t種別\t利用場所\t種別\t利用場所\t残高\t入出金\n" +
	"01/24\t現金\tATM\t\t\t1000\t-389\n" +
	"01/23\t入\t新宿\t出\t渋谷\t1389\t-157\n"

func writeStatement(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "load.txt")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, RawRecord{
		MonthDay:  "01/24",
		Type1:     "現金",
		Place1:    "ATM",
		Type2:     "",
		Place2:    "",
		Balance:   "1000",
		AmountRaw: "-389",
	}, records[0])
	assert.Equal(t, "01/23", records[1].MonthDay)
	assert.Equal(t, "-157", records[1].AmountRaw)
}

func TestParse_ShortRowsPadded(t *testing.T) {
	records, err := Parse(strings.NewReader("header\n01/24\t現金\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "01/24", records[0].MonthDay)
	assert.Equal(t, "現金", records[0].Type1)
	assert.Equal(t, "", records[0].AmountRaw)
}

func TestParse_LongRowsTruncated(t *testing.T) {
	records, err := Parse(strings.NewReader("header\na\tb\tc\td\te\tf\tg\textra\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "g", records[0].AmountRaw)
}

func TestParse_BlankLinesDiscarded(t *testing.T) {
	input := "header\n\n  \n　\n01/24\t現金\tATM\t\t\t1000\t-389\n\n"
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParse_CRLFAndBareCR(t *testing.T) {
	input := "header\r\n01/24\t現金\tATM\t\t\t1000\t-389\r01/23\t入\t新宿\t\t\t500\t-100\r\n"
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParse_HeaderOnly(t *testing.T) {
	_, err := Parse(strings.NewReader("月日\t種別\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseFile_UTF8(t *testing.T) {
	path := writeStatement(t, []byte(sampleStatement))
	records, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestValidateFormat(t *testing.T) {
	t.Run("valid statement", func(t *testing.T) {
		path := writeStatement(t, []byte(sampleStatement))
		valid, err := ValidateFormat(path)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeStatement(t, []byte("月日\t種別\n"))
		valid, err := ValidateFormat(path)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ValidateFormat(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}
