package setup

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// A Step is one stage of the bootstrap pipeline.
type Step struct {
	Name string
	Run  func() error
}

// runPipeline executes the steps strictly in order. The first failure
// aborts the run and the returned error names the failing step.
func runPipeline(steps []Step) error {
	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) && !Debug {
		bar = progressbar.NewOptions(len(steps),
			progressbar.OptionSetDescription("setup"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, st := range steps {
		if bar != nil {
			_ = bar.Clear()
		}
		colArrow.Print("\n-> ")
		colSuccess.Println(st.Name)
		if err := st.Run(); err != nil {
			if bar != nil {
				_ = bar.Clear()
			}
			return fmt.Errorf("step %q failed: %w", st.Name, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}
