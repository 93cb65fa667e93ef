package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const fullHeader = "Hostname,Vulnerability,Remediation (Solution),Role,Environment,Synopsis,Plugin Text,VPR,VPR Score,First Discovered,CVE"

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t,
		fullHeader,
		`web01,TLS 1.0 enabled,Disable TLS 1.0,App Server,1. Production,Weak Cipher,"<plugin_output>out</plugin_output>",Critical,9.2,2026-01-10,CVE-2026-0001`,
		`db01,TLS 1.0 enabled,Disable TLS 1.0,Database,1. Production,Weak Cipher,,Critical,,,`,
	)
	records, err := Load(path, "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "web01", records[0].Hostname)
	assert.Equal(t, "Disable TLS 1.0", records[0].Remediation)
	assert.Equal(t, "Weak Cipher", records[0].Synopsis)
	assert.Equal(t, "Critical", records[0].VPR)
	assert.Equal(t, "9.2", records[0].VPRScore)
	assert.Equal(t, "CVE-2026-0001", records[0].CVE)

	// Empty cells load as empty strings; defaults happen at render time.
	assert.Empty(t, records[1].FirstDiscovered)
	assert.Empty(t, records[1].CVE)
}

func TestLoadCSV_SkipsBlankRows(t *testing.T) {
	path := writeCSV(t,
		fullHeader,
		`h,v,r,role,env,s,p,Critical,1,,`,
		`,,,,,,,,,,`,
	)
	records, err := Load(path, "")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoad_MissingColumns(t *testing.T) {
	path := writeCSV(t,
		"Hostname,Vulnerability,Environment",
		"h,v,e",
	)
	_, err := Load(path, "")
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	// The exact missing names, in required-column order.
	assert.Equal(t, []string{
		ColRemediation, ColRole, ColSynopsis, ColPluginText,
		ColVPR, ColVPRScore, ColFirstDiscovered, ColCVE,
	}, missing.Columns)
	assert.Contains(t, err.Error(), "Remediation (Solution)")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("scan.txt", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestLoadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := strings.Split(fullHeader, ",")
	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, name))
	}
	row := []string{"web01", "TLS 1.0 enabled", "Disable TLS 1.0", "App Server", "1. Production", "Weak Cipher", "out", "Critical", "9.2", "2026-01-10", "CVE-2026-0001"}
	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, val))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := Load(path, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "web01", records[0].Hostname)
	assert.Equal(t, "1. Production", records[0].Environment)
}

func TestLoadXLSX_MissingSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path, "No Such Sheet")
	require.Error(t, err)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xlsx", "a.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	files, err := Discover(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.xlsx"}, files)

	files, err = Discover(dir, "*.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.xlsx"}, files)
}

func TestDiscover_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))
	files, err := Discover(dir, "")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err := Load(path, "")
	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Columns, len(RequiredColumns))
}
