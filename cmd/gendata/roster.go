package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- YAML structures (roster) ---

type yamlRosterFile struct {
	Units []yamlUnit `yaml:"units"`
}

type yamlUnit struct {
	Name      string   `yaml:"name"`
	Hitpoints float64  `yaml:"hitpoints"`
	Luck      float64  `yaml:"def_luck"`
	Evasion   float64  `yaml:"def_eva"`
	Level     int      `yaml:"def_level"`
	Skills    []string `yaml:"skills"`
	Heals     []string `yaml:"heals"`
}

func generateRoster(dataDir, outDir string) error {
	src := filepath.Join(dataDir, "roster.yaml")
	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	var file yamlRosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", src, err)
	}

	seen := make(map[string]struct{}, len(file.Units))
	for _, u := range file.Units {
		if u.Name == "" {
			return fmt.Errorf("%s: unit without name", src)
		}
		if _, dup := seen[u.Name]; dup {
			return fmt.Errorf("%s: duplicate unit %q", src, u.Name)
		}
		seen[u.Name] = struct{}{}
	}

	code, err := format.Source(renderRoster(file.Units))
	if err != nil {
		return fmt.Errorf("formatting roster: %w", err)
	}

	out := filepath.Join(outDir, "roster_gen.go")
	if err := os.WriteFile(out, code, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("[gendata] roster: %d units -> %s\n", len(file.Units), out)
	return nil
}

func renderRoster(units []yamlUnit) []byte {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by cmd/gendata from data/roster.yaml. DO NOT EDIT.\n\n")
	buf.WriteString("package data\n\n")
	buf.WriteString("import \"github.com/udisondev/ehpsim/internal/unit\"\n\n")
	buf.WriteString("var rosterDefs = []unit.Definition{\n")
	for _, u := range units {
		fields := []string{
			"Name: " + strconv.Quote(u.Name),
			"Hitpoints: " + formatNum(u.Hitpoints),
			"Luck: " + formatNum(u.Luck),
			"Evasion: " + formatNum(u.Evasion),
			"Level: " + strconv.Itoa(u.Level),
		}
		if len(u.Skills) > 0 {
			fields = append(fields, "Skills: "+stringSlice(u.Skills))
		}
		if len(u.Heals) > 0 {
			fields = append(fields, "Heals: "+stringSlice(u.Heals))
		}
		fmt.Fprintf(&buf, "\t{%s},\n", strings.Join(fields, ", "))
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringSlice(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
