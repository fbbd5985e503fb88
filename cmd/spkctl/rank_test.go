package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mind-engage/mindengage-spk/internal/config"
	"github.com/mind-engage/mindengage-spk/internal/spk"
)

const sheet = `NIM;Nama;Modul 1;Modul 2;UTP;UAP;Keaktifan
001;Ani;80;85;75;80;90
002;Budi;60;65;60;55;70
003;Citra;90;95;88;92;95
004;Dedi;40;45;35;40;50
`

func writeSheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nilai.csv")
	if err := os.WriteFile(path, []byte(sheet), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func testConfig() config.Config {
	return config.Config{Cluster: config.ClusterConfig{Seed: 42, Restarts: 10, MaxIter: 300, Tolerance: 1e-4}}
}

func TestRankCmd_Table(t *testing.T) {
	cmd := newRankCmd(testConfig())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{writeSheet(t), "--w-modul", "1", "--w-utp", "1", "--w-uap", "1", "--w-keaktifan", "1"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "Dari 4 praktikan") || !strings.Contains(s, "Citra") {
		t.Fatalf("unexpected output:\n%s", s)
	}
	if strings.Index(s, "Citra") > strings.Index(s, "Dedi") {
		t.Fatalf("expected Citra ranked above Dedi:\n%s", s)
	}
}

func TestRankCmd_JSON(t *testing.T) {
	cmd := newRankCmd(testConfig())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{writeSheet(t), "--w-modul", "0.4", "--w-utp", "0.2", "--w-uap", "0.3", "--w-keaktifan", "0.1", "--json"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var res spk.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if len(res.Data) != 4 || res.Data[0].NIM != "003" {
		t.Fatalf("unexpected result: %+v", res.Data)
	}
}

func TestRankCmd_RequiresWeights(t *testing.T) {
	cmd := newRankCmd(testConfig())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{writeSheet(t), "--w-modul", "1"})
	if err := cmd.ExecuteContext(context.Background()); err == nil || !strings.Contains(err.Error(), "w-utp") {
		t.Fatalf("expected missing weight error, got %v", err)
	}
}
