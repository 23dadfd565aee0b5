package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/barun-bash/uic/internal/config"
)

const sampleDef = `# Components shared by every view.

BUTTON HomeButton:
	color = 'white'
	backgroundcolor = 'gray'
	text = 'Home'
	onclick = open(Main.view)

BUTTON AboutButton:
	color = 'white'
	backgroundcolor = 'gray'
	text = 'About'
	onclick = open(About.view)

CONTAINER NavBar:
	direction = 'row'
	gap = 10

TEXT Greeting:
	text = t
	fontsize = 16

BUTTON Bigger:
	text = 'Bigger'
	onclick = set(Greeting.fontsize, Greeting.fontsize + 2)

HomeButton AS hb
AboutButton AS ab
NavBar WITH components=[hb, ab] AS nb
Greeting WITH t='Hello!' AS hello
Bigger AS bigger
`

const sampleMain = `nb
hello
bigger
`

const sampleAbout = `nb
Greeting WITH t='Built with uic.'
`

// InitProject scaffolds a project in dir: uic.yaml with the default
// settings plus a sample definition and two views. It refuses to touch
// a directory that already has a uic.yaml. Returns the files written.
func InitProject(dir string) ([]string, error) {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return nil, fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := config.Default()
	input := filepath.Join(dir, cfg.Input)
	if err := os.MkdirAll(input, 0755); err != nil {
		return nil, fmt.Errorf("could not create directory %s: %w", input, err)
	}

	files := []struct {
		name, content string
	}{
		{"App.def", sampleDef},
		{"Main.view", sampleMain},
		{"About.view", sampleAbout},
	}
	var written []string
	for _, f := range files {
		path := filepath.Join(input, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return written, fmt.Errorf("could not write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if err := config.Save(dir, cfg); err != nil {
		return written, err
	}
	return append(written, cfgPath), nil
}
