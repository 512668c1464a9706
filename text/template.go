package text

import (
	"bufio"
	"bytes"
	"io"
	"text/template"
)

// Execute renders the template and copies it to w with empty lines
// removed, so that optional template sections can vanish without
// leaving holes in the output.
func Execute(tpl *template.Template, w io.Writer, ctx interface{}) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return err
	}
	scan := bufio.NewScanner(&buf)
	for scan.Scan() {
		line := scan.Text()
		if line == "" {
			continue
		}
		io.WriteString(w, line)
		io.WriteString(w, "\n")
	}
	return scan.Err()
}
