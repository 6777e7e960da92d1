package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/JHUAPL/meta-simulator/internal/split"
)

// execute runs a fresh command tree with args and returns its stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func outputFiles(t *testing.T, dir string) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	files := make(map[string]string)
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		files[e.Name()] = string(b)
	}
	return files
}

func Test_splitExec(t *testing.T) {
	in := filepath.Join("testdata", "two.fa")

	tests := []struct {
		name string
		args []string
		want map[string]string
	}{
		{
			"all records",
			[]string{"-i", in},
			map[string]string{
				"seq1.fasta": ">seq1\nACGT",
				"seq2.fasta": ">seq2\nTTGCA",
			},
		},
		{
			"count caps output",
			[]string{"-i", in, "-n", "1"},
			map[string]string{
				"seq1.fasta": ">seq1\nACGT",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			if _, _, err := execute(t, append(tt.args, "-o", out)...); err != nil {
				t.Fatalf("execute() error = %v", err)
			}

			if got := outputFiles(t, out); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrote %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_splitExec_verbose(t *testing.T) {
	out := t.TempDir()
	_, stderr, err := execute(t, "-i", filepath.Join("testdata", "two.fa"), "-o", out, "--verbose")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stderr, "wrote record") {
		t.Errorf("verbose logs missing per-record lines: %s", stderr)
	}
	if !strings.Contains(stderr, "split complete") {
		t.Errorf("logs missing summary line: %s", stderr)
	}
}

func Test_splitExec_settings(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0777); err != nil {
		t.Fatal(err)
	}

	in, err := filepath.Abs(filepath.Join("testdata", "two.fa"))
	if err != nil {
		t.Fatal(err)
	}

	settings := filepath.Join(dir, "settings.yaml")
	contents := "in: " + in + "\nout: " + out + "\n"
	if err := os.WriteFile(settings, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "--settings", settings); err != nil {
		t.Fatal(err)
	}

	if got := len(outputFiles(t, out)); got != 2 {
		t.Errorf("wrote %d files, want 2", got)
	}
}

func Test_splitExec_errors(t *testing.T) {
	out := t.TempDir()

	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{
			"no input",
			[]string{"-o", out},
			func(err error) bool { return err != nil },
		},
		{
			"no output",
			[]string{"-i", filepath.Join("testdata", "two.fa")},
			func(err error) bool { return err != nil },
		},
		{
			"missing input",
			[]string{"-i", filepath.Join("testdata", "missing.fa"), "-o", out},
			func(err error) bool {
				var e *split.InputNotFoundError
				return errors.As(err, &e)
			},
		},
		{
			"malformed input",
			[]string{"-i", filepath.Join("testdata", "malformed.fa"), "-o", out},
			func(err error) bool {
				var e *split.ParseError
				return errors.As(err, &e)
			},
		},
		{
			"missing output directory",
			[]string{"-i", filepath.Join("testdata", "two.fa"), "-o", filepath.Join(out, "missing")},
			func(err error) bool {
				var e *split.OutputWriteError
				return errors.As(err, &e)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if !tt.check(err) {
				t.Errorf("execute() error = %v (%T)", err, err)
			}
		})
	}
}

func Test_countExec(t *testing.T) {
	in := filepath.Join("testdata", "two.fa")

	stdout, _, err := execute(t, "count", "-i", in)
	if err != nil {
		t.Fatal(err)
	}

	if want := in + "\t2\n"; stdout != want {
		t.Errorf("count printed %q, want %q", stdout, want)
	}
}

func Test_countExec_rootOnlyFlags(t *testing.T) {
	in := filepath.Join("testdata", "two.fa")

	for _, flag := range []string{"--verbose", "--settings=s.yaml"} {
		if _, _, err := execute(t, "count", "-i", in, flag); err == nil {
			t.Errorf("count accepted %s, which only the split command reads", flag)
		}
	}
}

func Test_docsCmd(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := execute(t, "docs", dir); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		page  string
		wants []string
	}{
		{"seqsep.md", []string{"title: seqsep\n", "permalink: /\n"}},
		{"seqsep_count.md", []string{"title: count\n", "parent: seqsep\n"}},
		{"seqsep_completion.md", []string{"title: completion\n", "parent: seqsep\n", "has_children: true\n"}},
		{"seqsep_completion_bash.md", []string{"title: bash\n", "parent: completion\n", "grand_parent: seqsep\n", "nav_order: 0\n"}},
		{"seqsep_completion_zsh.md", []string{"title: zsh\n", "parent: completion\n", "grand_parent: seqsep\n", "nav_order: 3\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			b, err := os.ReadFile(filepath.Join(dir, tt.page))
			if err != nil {
				t.Fatalf("missing doc page %s: %v", tt.page, err)
			}
			if !bytes.HasPrefix(b, []byte("---\n")) {
				t.Errorf("%s is missing its front matter", tt.page)
			}

			// front matter ends at the second "---"
			header := string(b)
			if end := strings.Index(header[4:], "---"); end >= 0 {
				header = header[:end+4]
			}
			for _, want := range tt.wants {
				if !strings.Contains(header, want) {
					t.Errorf("%s front matter missing %q:\n%s", tt.page, want, header)
				}
			}
		})
	}
}
