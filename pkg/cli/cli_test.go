package cli_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/edumfa/edumfa-go/pkg/cli"
	mocksdk "github.com/edumfa/edumfa-go/pkg/mock/sdk"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"
)

type result struct {
	Code   int
	Stdout string
	Stderr string
}

func (r *result) RequireStdout(t *testing.T, lines []string) {
	t.Helper()
	require.Equal(t, strings.Join(lines, "\n"), strings.TrimSuffix(r.Stdout, "\n"))
}

func (r *result) RequireStderr(t *testing.T, lines []string) {
	t.Helper()
	require.Equal(t, strings.Join(lines, "\n"), strings.TrimSuffix(r.Stderr, "\n"))
}

func testClient(t *testing.T, fn func(*cli.Engine, *mocksdk.Interface)) {
	i := &mocksdk.Interface{}

	c := cli.New("edumfa", "test")
	c.Client = i
	c.Settings = t.TempDir()

	fn(c, i)

	i.AssertExpectations(t)
}

func testExecute(e *cli.Engine, cmd string, stdin io.Reader) (*result, error) {
	if stdin == nil {
		stdin = &bytes.Buffer{}
	}

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	e.Reader.Reader = stdin

	e.Writer.Color = false
	e.Writer.Stdout = &stdout
	e.Writer.Stderr = &stderr

	cp, err := shellquote.Split(cmd)
	if err != nil {
		return nil, err
	}

	code := e.Execute(cp)

	res := &result{
		Code:   code,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	return res, nil
}
