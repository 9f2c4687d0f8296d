// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	apps := []string{
		"clstr/internal/statsapp", "clstr/internal/topapp",
		"clstr/internal/filterapp", "clstr/internal/extractapp",
	}
	bans := map[string][]string{
		"clstr/internal/output":  append([]string{"clstr/internal/writers", "clstr/cmd/"}, apps...),
		"clstr/internal/writers": append([]string{"clstr/cmd/"}, apps...),
		"clstr/internal/common":  append([]string{"clstr/internal/writers", "clstr/internal/output", "clstr/cmd/"}, apps...),
		"clstr/internal/pretty":  append([]string{"clstr/internal/writers", "clstr/cmd/"}, apps...),
		"clstr/internal/seqdb":   append([]string{"clstr/internal/writers", "clstr/internal/output", "clstr/cmd/"}, apps...),
		"clstr/internal/cmdutil": append([]string{"clstr/cmd/"}, apps...),
		"clstr/internal/clibase": append([]string{"clstr/cmd/"}, apps...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "clstr/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "clstr/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
